package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint
	JTI    string
	Exp    time.Time
}

type customClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type HSProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewHSProvider(secret, issuer string, ttl time.Duration) *HSProvider {
	return &HSProvider{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs an HS256 token whose jti doubles as the server-side session key.
func (p *HSProvider) Issue(userID uint) (string, string, time.Time, error) {
	now := p.now()
	exp := now.Add(p.ttl)
	jti := uuid.NewString()

	claims := customClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(p.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, jti, exp, nil
}

func (p *HSProvider) Parse(raw string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &customClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithIssuer(p.issuer))
	if err != nil {
		return nil, err
	}
	cc, ok := parsed.Claims.(*customClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &Claims{UserID: cc.UserID, JTI: cc.ID, Exp: cc.ExpiresAt.Time}, nil
}
