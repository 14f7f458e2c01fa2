package auth

import (
	"maps"
	"time"

	"todolist/config"
	"todolist/internal/domain/service"
	"todolist/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Clock returns the current time. Tests swap it to move tokens through their lifetime.
type Clock func() time.Time

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    Clock
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithClock(cfg.SecretKey.Access, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL, time.Now)
}

// NewJWTServiceWithClock builds the service with an explicit clock.
func NewJWTServiceWithClock(secret, algorithm string, ttl time.Duration, now Clock) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", algorithm)
	}
	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a copy of claims with exp set to now + ttl.
func (s *jwtService) Issue(claims map[string]any) (string, error) {
	toEncode := make(jwt.MapClaims, len(claims)+1)
	maps.Copy(toEncode, claims)
	toEncode["exp"] = s.now().Add(s.ttl).Unix()

	token := jwt.NewWithClaims(s.method, toEncode)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode parses and verifies the token. Every failure maps to service.ErrInvalidToken.
func (s *jwtService) Decode(tokenString string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	return claims, nil
}
