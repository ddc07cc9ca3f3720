// Package session implementa el estado de autenticación de los clientes
// del back-office: decodificación del token, normalización de roles y el
// ciclo login/logout.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/ALEJO200244346760/KBNAdmin/models"
)

// ErrTokenInvalido se devuelve ante cualquier token que no se pueda
// decodificar. El que llama debe tratarlo como "no autenticado" y
// descartar el token almacenado.
var ErrTokenInvalido = errors.New("session: token malformado")

// Identity es la identidad que viaja dentro del bearer token.
type Identity struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}

type tokenClaims struct {
	ID       uint     `json:"id"`
	Nombre   string   `json:"nombre"`
	Apellido string   `json:"apellido"`
	Sub      string   `json:"sub"`
	Roles    []string `json:"roles"`
}

// Decode extracts the identity from a bearer token WITHOUT verifying the
// signature. Así es como los front ends enrutan al usuario antes de pegar
// al servidor; la verificación real vive en el middleware de auth.
func Decode(token string) (*Identity, error) {
	partes := strings.Split(token, ".")
	if len(partes) != 3 {
		return nil, ErrTokenInvalido
	}

	payload, err := base64.RawURLEncoding.DecodeString(partes[1])
	if err != nil {
		// Algunos emisores viejos rellenan con '='. El alfabeto sigue
		// siendo el URL-safe de JWT.
		payload, err = base64.URLEncoding.DecodeString(partes[1])
		if err != nil {
			return nil, ErrTokenInvalido
		}
	}

	var claims tokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, ErrTokenInvalido
	}

	rol := ""
	if len(claims.Roles) > 0 {
		rol = NormalizeRole(claims.Roles[0])
	}
	return &Identity{
		ID:       claims.ID,
		Nombre:   claims.Nombre,
		Apellido: claims.Apellido,
		Email:    claims.Sub,
		Rol:      rol,
	}, nil
}

// NormalizeRole strips the ROLE_ prefix that Spring-style backends prepend
// to authorities. Un rol desconocido pasa tal cual: el gate es quien decide
// qué hacer con él.
func NormalizeRole(raw string) string {
	return strings.TrimPrefix(raw, "ROLE_")
}

// TokenStore persiste el token entre sesiones (el cliente web usa
// localStorage; los tests, memoria).
type TokenStore interface {
	Token() string
	SetToken(string)
	Clear()
}

// MemoryStore es un TokenStore en memoria.
type MemoryStore struct {
	mu  sync.Mutex
	tok string
}

func (m *MemoryStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tok
}

func (m *MemoryStore) SetToken(t string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = t
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tok = ""
}

// Directory lista los usuarios registrados; se usa para completar un id
// ausente buscando por email.
type Directory interface {
	ListarUsuarios(ctx context.Context) ([]models.Usuario, error)
}

// Session es el estado de autenticación del proceso. Se crea una sola vez
// y vive lo que dura la sesión de la aplicación.
type Session struct {
	mu       sync.Mutex
	store    TokenStore
	identity *Identity
	cargando bool
}

// New restores the session from whatever token the store holds. Un token
// ilegible se descarta y la sesión arranca desautenticada.
func New(store TokenStore) *Session {
	s := &Session{store: store, cargando: true}
	if tok := store.Token(); tok != "" {
		id, err := Decode(tok)
		if err != nil {
			store.Clear()
		} else {
			s.identity = id
		}
	}
	s.mu.Lock()
	s.cargando = false
	s.mu.Unlock()
	return s
}

// Login persists the token and re-decodes the identity. Si el token es
// inválido no queda nada guardado.
func (s *Session) Login(token string) error {
	id, err := Decode(token)
	if err != nil {
		s.Logout()
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetToken(token)
	s.identity = id
	return nil
}

// Logout clears the stored token and the identity. Es puramente local:
// no hay invalidación del lado del servidor.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
	s.identity = nil
}

// Identity returns a copy of the current identity, or nil when the
// session is unauthenticated.
func (s *Session) Identity() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Cargando reports whether the session is still resolving.
func (s *Session) Cargando() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cargando
}

// Autenticado reports whether there is a decoded identity.
func (s *Session) Autenticado() bool {
	return s.Identity() != nil
}

// ResolverID completa un id ausente buscando el email en el directorio.
// Best effort: si la consulta falla la identidad queda como está y quien
// la use debe tolerar un id en cero hasta el próximo intento.
func (s *Session) ResolverID(ctx context.Context, dir Directory) {
	id := s.Identity()
	if id == nil || id.ID != 0 || id.Email == "" {
		return
	}

	usuarios, err := dir.ListarUsuarios(ctx)
	if err != nil {
		return
	}
	for _, u := range usuarios {
		if strings.EqualFold(u.Email, id.Email) {
			s.mu.Lock()
			if s.identity != nil {
				s.identity.ID = u.ID
			}
			s.mu.Unlock()
			return
		}
	}
}
