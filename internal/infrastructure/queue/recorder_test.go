package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
	"github.com/nomadplanner/planner-api/internal/core/service"
	"github.com/nomadplanner/planner-api/internal/infrastructure/db/memory"
)

type blockingService struct {
	release chan struct{}
	mu      sync.Mutex
	seen    []ports.Exchange
}

func (s *blockingService) List(context.Context, int64, string) ([]*domain.AiConversation, error) {
	return nil, errors.New("not used")
}

func (s *blockingService) Record(_ context.Context, ex ports.Exchange) error {
	<-s.release
	s.mu.Lock()
	s.seen = append(s.seen, ex)
	s.mu.Unlock()
	return nil
}

func exchange(userID int64, module, content string) ports.Exchange {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	return ports.Exchange{UserID: userID, Module: module, Messages: []domain.ConversationMessage{
		{Role: domain.RoleUser, Content: content, CreatedAt: now},
		{Role: domain.RoleAssistant, Content: "{}", CreatedAt: now},
	}}
}

func TestRecorder_PreservesOrderPerConversation(t *testing.T) {
	store := memory.New()
	svc := service.NewConversationService(store.Conversations, zerolog.Nop())
	r := NewRecorder(3, svc, zerolog.Nop())
	r.Start(context.Background())

	contents := []string{"a", "b", "c", "d", "e"}
	for _, c := range contents {
		if !r.Enqueue(exchange(1, domain.ModuleAssistant, c)) {
			t.Fatalf("enqueue %q rejected", c)
		}
	}
	_ = r.Enqueue(exchange(2, domain.ModuleBudget, "other"))
	r.Close()

	convs, _ := store.Conversations.ListByUserModule(context.Background(), 1, domain.ModuleAssistant)
	if len(convs) != 1 {
		t.Fatalf("expected one conversation, got %d", len(convs))
	}
	msgs := convs[0].Messages
	if len(msgs) != 2*len(contents) {
		t.Fatalf("expected %d messages, got %d", 2*len(contents), len(msgs))
	}
	for i, c := range contents {
		if msgs[2*i].Content != c {
			t.Fatalf("message %d = %q, want %q", 2*i, msgs[2*i].Content, c)
		}
	}

	other, _ := store.Conversations.ListByUserModule(context.Background(), 2, domain.ModuleBudget)
	if len(other) != 1 {
		t.Fatalf("expected other user's conversation, got %d", len(other))
	}
}

func TestRecorder_DropsWhenFull(t *testing.T) {
	svc := &blockingService{release: make(chan struct{})}
	r := NewRecorder(1, svc, zerolog.Nop())
	r.Start(context.Background())

	accepted := 0
	for i := 0; i < channelBuffer+10; i++ {
		if r.Enqueue(exchange(1, domain.ModuleLegal, "q")) {
			accepted++
		}
	}
	// One exchange may already be held by the worker.
	if accepted < channelBuffer || accepted > channelBuffer+1 {
		t.Fatalf("accepted %d exchanges with buffer %d", accepted, channelBuffer)
	}

	close(svc.release)
	r.Close()
	if len(svc.seen) != accepted {
		t.Fatalf("drained %d of %d accepted exchanges", len(svc.seen), accepted)
	}
}

func TestRecorder_RejectsAfterClose(t *testing.T) {
	store := memory.New()
	r := NewRecorder(2, service.NewConversationService(store.Conversations, zerolog.Nop()), zerolog.Nop())
	r.Start(context.Background())
	r.Close()
	r.Close()

	if r.Enqueue(exchange(1, domain.ModuleCalendar, "late")) {
		t.Fatalf("enqueue after close accepted")
	}
}

func TestRecorder_ShardIndexStable(t *testing.T) {
	r := NewRecorder(0, nil, zerolog.Nop())
	if len(r.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(r.workers))
	}
	a := r.shardIndex(7, domain.ModuleBudget)
	for i := 0; i < 10; i++ {
		if r.shardIndex(7, domain.ModuleBudget) != a {
			t.Fatalf("shard index not deterministic")
		}
	}
}
