package catalog

// TopicChanged is published after every committed catalog mutation.
const TopicChanged = "catalog.changed"

// ChangeEvent describes one committed mutation. Publication happens outside
// the transaction and never affects the operation outcome.
type ChangeEvent struct {
	Entity     string
	Action     string
	ID         int64
	BusinessID int64
}

func (s *Service) publish(entity, action string, id, businessID int64) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(TopicChanged, ChangeEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		BusinessID: businessID,
	})
}
