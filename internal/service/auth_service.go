package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/config"
	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/redis"
)

// ── Errores del módulo de autenticación ──

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioInactivo       = errors.New("el usuario está inactivo")
	ErrUsernameEnUso         = errors.New("el nombre de usuario ya está en uso")
)

// AuthService autenticación y ciclo de vida de la sesión
type AuthService interface {
	// Login valida credenciales y emite el token de sesión con los conjuntos
	// efectivos de roles y permisos embebidos.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Registro crea una cuenta nueva con el rol usuario_asignado.
	Registro(ctx context.Context, req *dto.RegistroUsuarioRequest) (*dto.UsuarioResponse, error)
	// Logout invalida el token agregando su JTI a la lista negra.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService crea una instancia de AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.Usuario.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		s.logger.Error("consultando usuario", zap.Error(err))
		return nil, err
	}

	if !usuario.Activo {
		return nil, ErrUsuarioInactivo
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.jwtMgr.GenerateToken(
		usuario.ID,
		usuario.Username,
		usuario.NombresRoles(),
		usuario.PermisosEfectivos(),
	)
	if err != nil {
		s.logger.Error("generando token", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}

func (s *authService) Registro(ctx context.Context, req *dto.RegistroUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.Usuario.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("consultando usuario", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("generando hash de contraseña", zap.Error(err))
		return nil, err
	}

	usuario := &model.Usuario{
		Username:     req.Username,
		PasswordHash: string(hash),
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		Activo:       true,
	}

	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		s.logger.Error("creando usuario", zap.Error(err))
		return nil, err
	}

	// Toda cuenta nueva nace con el rol de menor privilegio; los roles
	// adicionales se otorgan después por la vía de usuarios-roles.
	if rol, err := s.repo.Rol.GetByNombre(ctx, "usuario_asignado"); err == nil {
		ur := &model.UsuarioRol{UsuarioID: usuario.ID, RolID: rol.ID}
		if err := s.repo.UsuarioRol.Create(ctx, ur); err != nil {
			s.logger.Error("asignando rol al usuario",
				zap.Int64("usuario_id", usuario.ID),
				zap.Int64("rol_id", rol.ID),
				zap.Error(err))
			return nil, err
		}
	}

	creado, err := s.repo.Usuario.GetByID(ctx, usuario.ID)
	if err != nil {
		return nil, err
	}

	return toUsuarioResponse(creado), nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		// Sin Redis el logout es solo del lado del cliente.
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}
