package main

import (
	"net/http"
	"time"

	"membership/internal/api/router"
	"membership/internal/auth"
	"membership/internal/cache"
	"membership/internal/config"
	"membership/internal/core/repository"
	"membership/internal/core/service"
	"membership/internal/mailer"
	"membership/internal/storage"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := config.ConnectMongoDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	cache.Initialize(cfg.RedisURL, logger)
	defer cache.Close()

	uploads, err := storage.NewLocalStore(cfg.UploadDir, "/uploads", cfg.MaxUploadMB<<20)
	if err != nil {
		logger.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)

	var mail mailer.Mailer
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom, cfg.AdminEmail)
	} else {
		logger.Warn("SMTP not configured, contact notifications disabled")
	}

	userRepo := repository.NewMongoUserRepository(db)
	memberRepo := repository.NewMongoMemberRepository(db)
	newsRepo := repository.NewMongoNewsRepository(db)
	contactRepo := repository.NewMongoContactRepository(db)

	r := router.New(router.Deps{
		Users:    service.NewUserService(userRepo),
		Members:  service.NewMemberService(memberRepo),
		News:     service.NewNewsService(newsRepo),
		Contacts: service.NewContactService(contactRepo),
		Tokens:   tokens,
		Uploads:  uploads,
		Mailer:   mail,
		Logger:   logger,
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
