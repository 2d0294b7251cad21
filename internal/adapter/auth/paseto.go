package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ypmarket/internal/core/domain"
	"github.com/MikeRez0/ypmarket/internal/core/port"
)

const payloadClaim = "payload"

const tokenTTL = 24 * time.Hour

type PasetoToken struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
}

// New builds a token service from a hex encoded key; an empty key gets a
// random one.
func New(keyHex string) (*PasetoToken, error) {
	key := paseto.NewV4SymmetricKey()
	if keyHex != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(keyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid token key: %w", err)
		}
	}

	return &PasetoToken{
		parser: paseto.NewParser(),
		key:    key,
		ttl:    tokenTTL,
	}, nil
}

func (p *PasetoToken) ExportKey() string {
	return p.key.ExportHex()
}

func (p *PasetoToken) CreateToken(userID string, role domain.Role) (string, error) {
	if userID == "" || !role.Valid() {
		return "", domain.ErrTokenCreation
	}

	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(p.ttl))

	payload := port.TokenPayload{UserID: userID, Role: role}
	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil || !payload.Role.Valid() {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
