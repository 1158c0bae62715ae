package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wolf0dev/gestion-horario-sub000/config"
	"github.com/wolf0dev/gestion-horario-sub000/internal/api/handler"
	"github.com/wolf0dev/gestion-horario-sub000/internal/api/router"
	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/database"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	applogger "github.com/wolf0dev/gestion-horario-sub000/pkg/logger"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/redis"
)

func main() {
	// 1. Cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializar el logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al inicializar el logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando la aplicación",
		zap.Int("port", cfg.Server.Port),
		zap.String("base_url", cfg.Server.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Conectar a la base de datos
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	// 3.1 Ejecutar migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("no se pudo obtener el sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("fallo en las migraciones", zap.Error(err))
	}

	// 4. Conectar a Redis (opcional: si falla se degrada sin lista negra
	//    de tokens ni límite de intentos, pero el servidor arranca igual)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis no disponible, se omiten lista negra y límite de intentos", zap.Error(err))
		rdb = nil
	}

	// 5. Gestor de tokens JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 6.1 Cuenta administradora inicial si la tabla está vacía
	if err := seedAdmin(context.Background(), repo, logger); err != nil {
		logger.Fatal("no se pudo sembrar la cuenta administradora", zap.Error(err))
	}

	// 7. Rutas
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Servidor HTTP con apagado ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("fallo del servidor HTTP", zap.Error(err))
		}
	}()

	// 9. Esperar señal del sistema y apagar ordenadamente
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de apagado recibida", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al apagar el servidor", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor detenido")
}

// seedAdmin crea el usuario admin/admin con el rol administrador cuando no
// existe ningún usuario. La contraseña debe cambiarse tras el primer ingreso.
func seedAdmin(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	total, err := repo.Usuario.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.Usuario{
		Username:     "admin",
		PasswordHash: string(hash),
		Nombre:       "Administrador",
		Apellido:     "Sistema",
		Email:        "admin@localhost",
		Activo:       true,
	}
	if err := repo.Usuario.Create(ctx, admin); err != nil {
		return err
	}

	rol, err := repo.Rol.GetByNombre(ctx, "administrador")
	if err != nil {
		return err
	}
	if err := repo.UsuarioRol.Create(ctx, &model.UsuarioRol{
		UsuarioID: admin.ID,
		RolID:     rol.ID,
	}); err != nil {
		return err
	}

	logger.Info("cuenta administradora inicial creada", zap.String("username", "admin"))
	return nil
}
