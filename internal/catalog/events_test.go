package catalog

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/require"
)

func TestMutationsPublishChangeEvents(t *testing.T) {
	db := newTestDB(t)
	bus := EventBus.New()
	s := NewService(db, bus)

	var events []ChangeEvent
	require.NoError(t, bus.Subscribe(TopicChanged, func(evt ChangeEvent) {
		events = append(events, evt)
	}))

	ctx := context.Background()
	tag, err := s.CreateTag(ctx, 7, "spicy")
	require.NoError(t, err)

	product, err := s.CreateProduct(ctx, ProductCreate{
		BusinessID: 7, Title: "Cola", Price: f64(3.50), TagIDs: []int64{tag.ID},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, product.ID))

	require.Len(t, events, 3)
	require.Equal(t, ChangeEvent{Entity: "tag", Action: "create", ID: tag.ID, BusinessID: 7}, events[0])
	require.Equal(t, ChangeEvent{Entity: "product", Action: "create", ID: product.ID, BusinessID: 7}, events[1])
	require.Equal(t, ChangeEvent{Entity: "product", Action: "delete", ID: product.ID, BusinessID: 7}, events[2])
}

func TestFailedMutationPublishesNothing(t *testing.T) {
	db := newTestDB(t)
	bus := EventBus.New()
	s := NewService(db, bus)

	var events []ChangeEvent
	require.NoError(t, bus.Subscribe(TopicChanged, func(evt ChangeEvent) {
		events = append(events, evt)
	}))

	_, err := s.CreateProduct(context.Background(), ProductCreate{Title: "X"})
	require.Error(t, err)
	require.Empty(t, events)
}
