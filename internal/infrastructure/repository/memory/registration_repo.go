package memory

import (
	"context"
	"sort"

	"github.com/pitchside/leagueops/internal/domain/registration"
)

func (s *Store) CreateRequest(ctx context.Context, req registration.Request) error {
	defer s.enter(ctx)()

	s.data.requests[req.ID] = cloneRequest(req)
	return nil
}

func (s *Store) GetRequest(ctx context.Context, id string) (registration.Request, bool, error) {
	defer s.enter(ctx)()

	req, ok := s.data.requests[id]
	if !ok {
		return registration.Request{}, false, nil
	}
	return cloneRequest(req), true, nil
}

func (s *Store) ListRequestsByStatus(ctx context.Context, status registration.Status) ([]registration.Request, error) {
	defer s.enter(ctx)()

	out := make([]registration.Request, 0)
	for _, req := range s.data.requests {
		if req.Status == status {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// TransitionRequest applies the optimistic status check: the write happens
// only while the stored status still equals expect.
func (s *Store) TransitionRequest(ctx context.Context, req registration.Request, expect registration.Status) (bool, error) {
	defer s.enter(ctx)()

	stored, ok := s.data.requests[req.ID]
	if !ok || stored.Status != expect {
		return false, nil
	}

	s.data.requests[req.ID] = cloneRequest(req)
	return true, nil
}

// cloneRequest detaches the pointer-typed detail payloads so callers cannot
// mutate stored state (or a rolled-back snapshot) through shared pointers.
func cloneRequest(req registration.Request) registration.Request {
	out := req
	if req.CreateTeam != nil {
		details := *req.CreateTeam
		out.CreateTeam = &details
	}
	if req.Join != nil {
		details := *req.Join
		out.Join = &details
	}
	if req.ApprovedAt != nil {
		at := *req.ApprovedAt
		out.ApprovedAt = &at
	}
	if req.RejectedAt != nil {
		at := *req.RejectedAt
		out.RejectedAt = &at
	}
	return out
}
