package port

import "github.com/MikeRez0/ypmarket/internal/core/domain"

type TokenPayload struct {
	UserID string      `json:"userId"`
	Role   domain.Role `json:"role"`
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(userID string, role domain.Role) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
