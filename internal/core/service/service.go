package service

import (
	"github.com/MikeRez0/ypmarket/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo     port.Repository
	notifier port.Notifier
	locker   port.Locker
	logger   *zap.Logger
}

func NewService(repo port.Repository, notifier port.Notifier,
	locker port.Locker, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:     repo,
		notifier: notifier,
		locker:   locker,
		logger:   logger,
	}, nil
}
