package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"orgchart/internal/domain"
	"orgchart/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload handed to clients after register or login.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

func (t TokenIssuer) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t TokenIssuer) Issue(u models.User) (string, error) {
	if len(t.Secret) == 0 {
		return "", domain.InternalError{Msg: "token secret not configured"}
	}
	now := t.now()
	ttl := t.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := Claims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			Issuer:    t.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "sign token", Err: err}
	}
	return signed, nil
}

// Parse verifies signature, algorithm, issuer and expiry and returns the
// caller identity.
func (t TokenIssuer) Parse(raw string) (domain.RequestContext, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.Issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.Secret, nil
	}, opts...)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: msg, Err: err}
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token", Err: fmt.Errorf("subject %q", claims.Subject)}
	}
	return domain.RequestContext{UserID: domain.ID(id), Username: claims.Username}, nil
}
