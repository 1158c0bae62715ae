package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
)

// ── Errores del módulo de usuarios ──

var ErrUsuarioNotFound = errors.New("el usuario no existe")

// UsuarioService administración de usuarios
type UsuarioService interface {
	GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error)
	List(ctx context.Context) ([]dto.UsuarioResponse, error)
	Update(ctx context.Context, req *dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUsuarioService crea una instancia de UsuarioService
func NewUsuarioService(repo *repository.Repository, logger *zap.Logger) UsuarioService {
	return &usuarioService{repo: repo, logger: logger}
}

func (s *usuarioService) GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		s.logger.Error("consultando usuario", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

func (s *usuarioService) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.Usuario.List(ctx)
	if err != nil {
		s.logger.Error("listando usuarios", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		result = append(result, *toUsuarioResponse(&usuarios[i]))
	}
	return result, nil
}

func (s *usuarioService) Update(ctx context.Context, req *dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNotFound
		}
		s.logger.Error("consultando usuario", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	if req.Username != usuario.Username {
		if _, err := s.repo.Usuario.GetByUsername(ctx, req.Username); err == nil {
			return nil, ErrUsernameEnUso
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	usuario.Username = req.Username
	usuario.Nombre = req.Nombre
	usuario.Apellido = req.Apellido
	usuario.Email = req.Email
	usuario.Activo = *req.Activo

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}

	if err := s.repo.Usuario.Update(ctx, usuario); err != nil {
		s.logger.Error("actualizando usuario", zap.Int64("id", req.ID), zap.Error(err))
		return nil, err
	}

	return toUsuarioResponse(usuario), nil
}

func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Usuario.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNotFound
		}
		return err
	}
	if err := s.repo.Usuario.Delete(ctx, id); err != nil {
		s.logger.Error("eliminando usuario", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// toUsuarioResponse arma la identidad de sesión con los conjuntos planos
// de roles y permisos efectivos
func toUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	roles := u.NombresRoles()
	permisos := u.PermisosEfectivos()
	if roles == nil {
		roles = []string{}
	}
	if permisos == nil {
		permisos = []string{}
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Username: u.Username,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Activo:   u.Activo,
		Roles:    roles,
		Permisos: permisos,
	}
}
