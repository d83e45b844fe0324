package auth

import (
	"context"
	"time"

	autherrors "gtb-hrms/internal/auth/errors"
	"gtb-hrms/internal/domain"
	"gtb-hrms/internal/rbac"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Roles(ctx context.Context) []RoleOptionResponse
	SelectRole(ctx context.Context, req SelectRoleRequest) (SessionResponse, error)
	Me(ctx context.Context, actor domain.Actor) (MeResponse, error)
}

type service struct {
	repo   Repository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, secret string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &service{repo: repo, secret: []byte(secret), ttl: ttl, now: time.Now, logger: l}
}

func (s *service) Roles(ctx context.Context) []RoleOptionResponse {
	out := make([]RoleOptionResponse, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		out = append(out, RoleOptionResponse{
			Role:        string(r),
			Title:       r.Title(),
			Description: roleDescriptions[r],
		})
	}
	return out
}

func (s *service) SelectRole(ctx context.Context, req SelectRoleRequest) (SessionResponse, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		s.logger.Warn("select role rejected", zap.String("role", req.Role))
		return SessionResponse{}, autherrors.ErrInvalidRole
	}

	p, err := s.resolve(ctx, role)
	if err != nil {
		s.logger.Warn("select role principal lookup failed", zap.String("role", string(role)), zap.Error(err))
		return SessionResponse{}, err
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(p, expiresAt)
	if err != nil {
		s.logger.Error("select role sign token failed", zap.Error(err))
		return SessionResponse{}, err
	}

	s.logger.Info("session started",
		zap.String("employee_id", p.ID),
		zap.String("role", string(role)),
	)

	return SessionResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		User:        mapPrincipal(p),
		Navigation:  rbac.Navigation(role),
	}, nil
}

func (s *service) Me(ctx context.Context, actor domain.Actor) (MeResponse, error) {
	var (
		p   Principal
		err error
	)
	if actor.ID == AdminPrincipalID && actor.Role == domain.RoleAdmin {
		p = adminPrincipal
	} else {
		p, err = s.lookup(ctx, actor.ID)
		if err != nil {
			return MeResponse{}, err
		}
		// the role in the token wins over the directory role
		p.Role = actor.Role
	}

	caps := rbac.Capabilities(actor.Role)
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, c.String())
	}

	return MeResponse{
		User:         mapPrincipal(p),
		Capabilities: names,
		Navigation:   rbac.Navigation(actor.Role),
	}, nil
}

// resolve finds the persona for role by explicit lookup. A missing record is
// an error; there is no fallback to another employee.
func (s *service) resolve(ctx context.Context, role domain.Role) (Principal, error) {
	if role == domain.RoleAdmin {
		return adminPrincipal, nil
	}
	id, ok := personas[role]
	if !ok {
		return Principal{}, autherrors.ErrPrincipalNotFound
	}
	p, err := s.lookup(ctx, id)
	if err != nil {
		return Principal{}, err
	}
	p.Role = role
	return p, nil
}

func (s *service) lookup(ctx context.Context, id string) (Principal, error) {
	e, err := s.repo.FindEmployeeByID(ctx, id)
	if err != nil {
		return Principal{}, err
	}
	if e == nil {
		return Principal{}, autherrors.ErrPrincipalNotFound
	}
	return Principal{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Avatar:      e.Avatar,
		Role:        e.Role,
		Department:  e.Department,
		InDirectory: true,
	}, nil
}

func (s *service) generateToken(p Principal, expiresAt time.Time) (string, error) {
	if len(s.secret) == 0 {
		return "", autherrors.ErrSessionSecretMissing
	}
	claims := jwt.MapClaims{
		"employee_id": p.ID,
		"role":        string(p.Role),
		"name":        p.Name,
		"iat":         s.now().Unix(),
		"exp":         expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func mapPrincipal(p Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Avatar:      p.Avatar,
		Role:        string(p.Role),
		Title:       p.Role.Title(),
		Department:  p.Department,
		InDirectory: p.InDirectory,
	}
}
