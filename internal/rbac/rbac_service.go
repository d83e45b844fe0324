package rbac

import (
	"sync"

	"gtb-hrms/internal/domain"
	rbacerrors "gtb-hrms/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	RoleCapabilities(role domain.Role) (RoleCapabilitiesResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the policy into enforcer right away.
func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{repo: repo, enforcer: enforcer, logger: l}
	if err := s.LoadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}

	s.enforcer.ClearPolicy()
	for _, rp := range rows {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded", zap.Int("rules", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) RoleCapabilities(role domain.Role) (RoleCapabilitiesResponse, error) {
	if !role.Valid() {
		return RoleCapabilitiesResponse{}, rbacerrors.ErrUnknownRole
	}

	caps := Capabilities(role)
	resp := RoleCapabilitiesResponse{
		Role:         string(role),
		Capabilities: make([]CapabilityResponse, 0, len(caps)),
		Navigation:   Navigation(role),
	}
	for _, c := range caps {
		resp.Capabilities = append(resp.Capabilities, CapabilityResponse{
			Resource: c.Resource,
			Action:   c.Action,
			Name:     c.String(),
		})
	}
	return resp, nil
}
