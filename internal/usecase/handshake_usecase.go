package usecase

import (
	"errors"
	"log"
)

var (
	ErrHandshakeMissingParams = errors.New("missing hub.mode, hub.verify_token or hub.challenge")
	ErrHandshakeForbidden     = errors.New("webhook verify token mismatch")
)

// IHandshakeUseCase answers the provider subscription challenge.
type IHandshakeUseCase interface {
	Verify(mode, token, challenge string) (string, error)
}

type HandshakeUseCase struct {
	verifyToken string
}

var _ IHandshakeUseCase = (*HandshakeUseCase)(nil)

func NewHandshakeUseCase(verifyToken string) *HandshakeUseCase {
	return &HandshakeUseCase{verifyToken: verifyToken}
}

// Verify returns the challenge verbatim when the token matches exactly. An
// empty configured token never matches.
func (u *HandshakeUseCase) Verify(mode, token, challenge string) (string, error) {
	if mode == "" || token == "" || challenge == "" {
		log.Printf("[webhook][handshake] missing params mode_set=%t token_set=%t challenge_set=%t", mode != "", token != "", challenge != "")
		return "", ErrHandshakeMissingParams
	}
	if u.verifyToken == "" || token != u.verifyToken {
		log.Printf("[webhook][handshake] verify token mismatch mode=%s", mode)
		return "", ErrHandshakeForbidden
	}
	log.Printf("[webhook][handshake] verified mode=%s", mode)
	return challenge, nil
}
