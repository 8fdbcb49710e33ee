package service

import (
	"context"
	"testing"

	"minipigs/internal/config"
	"minipigs/internal/dto"
	"minipigs/internal/model"
	"minipigs/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsuarioRepo struct {
	porID    map[uuid.UUID]*model.Usuario
	porEmail map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{
		porID:    make(map[uuid.UUID]*model.Usuario),
		porEmail: make(map[string]*model.Usuario),
	}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	clonado := *u
	r.porID[u.ID] = &clonado
	r.porEmail[u.Email] = &clonado
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return u, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	clonado := *u
	r.porID[u.ID] = &clonado
	r.porEmail[u.Email] = &clonado
	return nil
}

func cfgDePrueba() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func TestRegistroCreaClienteYLoguea(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, cfgDePrueba())

	resp, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Email:    "maria@example.com",
		Nombre:   "María Solano",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	assert.Equal(t, RolCliente, resp.User.Rol)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// El hash nunca es la contraseña en claro.
	guardado := repo.porEmail["maria@example.com"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "contraseña-larga", guardado.PasswordHash)
}

func TestRegistroRechazaEmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, cfgDePrueba())

	req := dto.RegistroRequest{
		Email:    "maria@example.com",
		Nombre:   "María Solano",
		Password: "contraseña-larga",
	}
	_, err := svc.Registro(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Registro(context.Background(), req)
	require.Error(t, err)
}

func TestLoginYRefresh(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, cfgDePrueba())

	_, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Email:    "maria@example.com",
		Nombre:   "María Solano",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	sesion, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	renovada, err := svc.Refresh(context.Background(), sesion.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, sesion.User.ID, renovada.User.ID)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, cfgDePrueba())

	_, err := svc.Registro(context.Background(), dto.RegistroRequest{
		Email:    "maria@example.com",
		Nombre:   "María Solano",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "otra-cosa",
	})
	require.Error(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "contraseña-larga",
	})
	require.Error(t, err)
}
