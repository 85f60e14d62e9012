package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	playermock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/fantasy-football/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestPlayerRepository_ListAllHitsStoreOnce(t *testing.T) {
	repo := playermock.NewRepository(t)
	repo.On("ListAll", mock.Anything).Return([]player.Player{{Index: 1, Name: "Raphinha"}}, nil).Once()

	cached := NewPlayerRepository(repo, nil, basecache.NewStore(time.Minute))
	for n := 0; n < 3; n++ {
		items, err := cached.ListAll(context.Background())
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Raphinha" {
			t.Fatalf("unexpected items: %+v", items)
		}
		items[0].Name = "mutated"
	}
}

func TestPlayerRepository_WriteInvalidates(t *testing.T) {
	ctx := context.Background()
	repo := playermock.NewRepository(t)
	writer := playermock.NewWriter(t)

	repo.On("ListAll", mock.Anything).Return([]player.Player{{Index: 1, Name: "Raphinha"}}, nil).Once()
	repo.On("ListAll", mock.Anything).Return([]player.Player{}, nil).Once()
	writer.On("DeleteByName", mock.Anything, "Raphinha").Return(player.Player{Index: 1, Name: "Raphinha"}, true, nil).Once()

	cached := NewPlayerRepository(repo, writer, basecache.NewStore(time.Minute))
	if _, err := cached.ListAll(ctx); err != nil {
		t.Fatalf("list all: %v", err)
	}
	if _, _, err := cached.DeleteByName(ctx, "Raphinha"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, err := cached.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cache to be invalidated, got %+v", items)
	}
}

func TestPlayerRepository_ListAllRacingInsertIsNotCached(t *testing.T) {
	ctx := context.Background()
	repo := playermock.NewRepository(t)
	writer := playermock.NewWriter(t)

	started := make(chan struct{})
	release := make(chan struct{})
	before := []player.Player{{Index: 1, Name: "Raphinha"}}
	after := []player.Player{{Index: 1, Name: "Raphinha"}, {Index: 2, Name: "Lamine Yamal"}}

	repo.On("ListAll", mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(before, nil).
		Once()
	repo.On("ListAll", mock.Anything).Return(after, nil).Once()
	writer.On("Insert", mock.Anything, after[1]).Return(nil).Once()

	cached := NewPlayerRepository(repo, writer, basecache.NewStore(time.Minute))

	slow := make(chan []player.Player, 1)
	go func() {
		items, _ := cached.ListAll(ctx)
		slow <- items
	}()

	<-started
	if err := cached.Insert(ctx, after[1]); err != nil {
		t.Fatalf("insert: %v", err)
	}
	close(release)
	if items := <-slow; len(items) != 1 {
		t.Fatalf("racing read should see the pre-insert rows, got %+v", items)
	}

	items, err := cached.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all after insert: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected the insert to be visible, got %+v", items)
	}
}

func TestTeamRepository_GetByKeyCachesMisses(t *testing.T) {
	repo := teammock.NewRepository(t)
	repo.On("GetByKey", mock.Anything, "Real Madrid").Return(team.Team{}, false, nil).Once()

	cached := NewTeamRepository(repo, nil, basecache.NewStore(time.Minute))
	for n := 0; n < 2; n++ {
		_, ok, err := cached.GetByKey(context.Background(), "Real Madrid")
		if err != nil || ok {
			t.Fatalf("expected cached miss, ok=%v err=%v", ok, err)
		}
	}
}

func TestCacheKey(t *testing.T) {
	if got := cacheKey(playerKeyPrefix, "key:", "7"); got != "player:key:7" {
		t.Fatalf("unexpected key %q", got)
	}
}
