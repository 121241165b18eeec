package canvas

import (
	"fmt"

	"github.com/friisj/atelier/internal/linkgraph"
	"github.com/friisj/atelier/pkg/types"
)

// Field length bounds shared by the item and canvas validators.
const (
	maxNameLen     = 120
	maxContentLen  = 500
	maxEvidenceLen = 2000
)

// Service executes canvas mutations against the row store. The store
// handle is passed in explicitly so tests can substitute fakes; there is
// no package-level client.
type Service struct {
	store       types.Store
	session     types.Session
	revalidator types.Revalidator
	links       *linkgraph.Manager
}

// NewService returns a Service bound to the given collaborators.
// revalidator may be nil, in which case staleness notifications are
// dropped.
func NewService(store types.Store, session types.Session, revalidator types.Revalidator) *Service {
	return &Service{
		store:       store,
		session:     session,
		revalidator: revalidator,
		links:       linkgraph.NewManager(store),
	}
}

// Links exposes the link graph manager bound to the same store.
func (s *Service) Links() *linkgraph.Manager {
	return s.links
}

// requireUser resolves the current session and fails with
// types.ErrUnauthorized when no user is authenticated.
func (s *Service) requireUser() (string, error) {
	user, err := s.session.CurrentUser()
	if err != nil {
		return "", fmt.Errorf("resolving session: %w", err)
	}
	if user == "" {
		return "", types.ErrUnauthorized
	}
	return user, nil
}

// revalidate notifies the presentation layer that previously rendered
// views are stale. Fire-and-forget; never consulted for correctness.
func (s *Service) revalidate(path, scope string) {
	if s.revalidator != nil {
		s.revalidator.Revalidate(path, scope)
	}
}

// dberr wraps a storage failure as types.ErrDatabase. The outward
// message stays generic; the chain keeps the detail for server-side
// logging.
func dberr(err error) error {
	return fmt.Errorf("%w: %v", types.ErrDatabase, err)
}
