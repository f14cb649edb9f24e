//go:build integration

package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"estate_ingest/internal/domain"
	"estate_ingest/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_channels.up.sql"),
			filepath.Join(migrationsPath, "002_create_posts.up.sql"),
			filepath.Join(migrationsPath, "003_create_listings.up.sql"),
			filepath.Join(migrationsPath, "004_create_duplicates.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM duplicates")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM listings")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM posts")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM channels")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) mustChannel(telegramID int64) *domain.Channel {
	ch, err := NewChannelStore(s.db).GetOrCreate(s.ctx, telegramID, "Test Channel")
	s.Require().NoError(err)
	return ch
}

func (s *PostgresIntegrationSuite) mustPost(channelID, messageID int64, publishedAt time.Time, textHash string, phones ...string) int64 {
	store := NewPostStore(s.db)
	id, err := store.Create(s.ctx, &domain.Post{
		PostUID:     uidFor(channelID, messageID),
		ChannelID:   channelID,
		MessageID:   messageID,
		TextRaw:     "Сдаю квартиру",
		TextLen:     13,
		Phones:      phones,
		Hashtags:    []string{"аренда"},
		PublishedAt: publishedAt,
		TextHash:    textHash,
		Fingerprint: "fp-" + textHash,
	})
	s.Require().NoError(err)
	return id
}

func uidFor(channelID, messageID int64) string {
	return fmt.Sprintf("%d_%d", channelID, messageID)
}

func (s *PostgresIntegrationSuite) TestChannelStore_GetOrCreate() {
	store := NewChannelStore(s.db)

	ch1, err := store.GetOrCreate(s.ctx, 1001, "Квартиры Ташкент")
	s.NoError(err)
	s.Greater(ch1.ID, int64(0))
	s.Equal("Квартиры Ташкент", ch1.Title)

	ch2, err := store.GetOrCreate(s.ctx, 1001, "Renamed Channel")
	s.NoError(err)
	s.Equal(ch1.ID, ch2.ID)
	s.Equal("Renamed Channel", ch2.Title)
}

func (s *PostgresIntegrationSuite) TestPostStore_Create_And_ExistsByUID() {
	ch := s.mustChannel(1001)
	store := NewPostStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	post := &domain.Post{
		PostUID:     "1001_42",
		ChannelID:   ch.ID,
		MessageID:   42,
		TextRaw:     "Сдаю 2 комнатную квартиру",
		TextLen:     25,
		Phones:      []string{"+998901234567"},
		Hashtags:    []string{"аренда", "чиланзар"},
		PublishedAt: now,
		TextHash:    "abc123",
		Fingerprint: "def456",
	}

	id, err := store.Create(s.ctx, post)
	s.NoError(err)
	s.Greater(id, int64(0))

	exists, err := store.ExistsByUID(s.ctx, "1001_42")
	s.NoError(err)
	s.True(exists)

	exists, err = store.ExistsByUID(s.ctx, "1001_43")
	s.NoError(err)
	s.False(exists)

	// A second insert of the same post loses the uniqueness race.
	_, err = store.Create(s.ctx, post)
	s.ErrorIs(err, domain.ErrPostExists)
}

func (s *PostgresIntegrationSuite) TestPostStore_FindByTextHash_OrdersByPublishedAt() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	later := s.mustPost(ch.ID, 2, now, "samehash", "+998901111111")
	earlier := s.mustPost(ch.ID, 1, now.Add(-time.Hour), "samehash", "+998902222222")
	probe := s.mustPost(ch.ID, 3, now.Add(time.Hour), "samehash", "+998903333333")

	store := NewPostStore(s.db)
	found, err := store.FindByTextHash(s.ctx, "samehash", probe)
	s.NoError(err)
	s.Require().Len(found, 2)
	s.Equal(earlier, found[0].ID)
	s.Equal(later, found[1].ID)
}

func (s *PostgresIntegrationSuite) TestPostStore_FindByTextHash_SkipsDeleted() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	s.mustPost(ch.ID, 1, now.Add(-time.Hour), "samehash")
	probe := s.mustPost(ch.ID, 2, now, "samehash")

	store := NewPostStore(s.db)
	ids, err := store.MarkDeletedByMessage(s.ctx, ch.ID, 1)
	s.NoError(err)
	s.Len(ids, 1)

	found, err := store.FindByTextHash(s.ctx, "samehash", probe)
	s.NoError(err)
	s.Len(found, 0)
}

func (s *PostgresIntegrationSuite) TestPostStore_FindByPhoneOverlap() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	match := s.mustPost(ch.ID, 1, now.Add(-time.Hour), "h1", "+998901234567", "+998907654321")
	s.mustPost(ch.ID, 2, now.Add(-time.Minute), "h2", "+998909999999")
	probe := s.mustPost(ch.ID, 3, now, "h3", "+998907654321")

	store := NewPostStore(s.db)
	found, err := store.FindByPhoneOverlap(s.ctx, []string{"+998907654321"}, probe)
	s.NoError(err)
	s.Require().Len(found, 1)
	s.Equal(match, found[0].ID)
	s.ElementsMatch([]string{"+998901234567", "+998907654321"}, found[0].Phones)
}

func (s *PostgresIntegrationSuite) TestPostStore_MarkDuplicateOf_KeepsFirstPointer() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	original := s.mustPost(ch.ID, 1, now.Add(-time.Hour), "h1")
	other := s.mustPost(ch.ID, 2, now.Add(-time.Minute), "h2")
	dup := s.mustPost(ch.ID, 3, now, "h3")

	store := NewPostStore(s.db)
	s.NoError(store.MarkDuplicateOf(s.ctx, dup, original))
	s.NoError(store.MarkDuplicateOf(s.ctx, dup, other))

	var got int64
	err := s.db.GetContext(s.ctx, &got, "SELECT duplicate_of FROM posts WHERE id = $1", dup)
	s.NoError(err)
	s.Equal(original, got)
}

func (s *PostgresIntegrationSuite) TestListingStore_Create() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)
	postID := s.mustPost(ch.ID, 1, now, "h1", "+998901234567")

	store := NewListingStore(s.db)
	listing := &domain.Listing{
		PostID:           postID,
		IsRealEstate:     true,
		DealType:         domain.DealRentLong,
		ObjectType:       domain.ObjectFlat,
		Rooms:            utils.Ptr(2),
		Floor:            utils.Ptr(3),
		TotalFloors:      utils.Ptr(9),
		AreaM2:           utils.Ptr(55.0),
		Price:            utils.Ptr(600),
		Currency:         domain.CurrencyUSD,
		PricePeriod:      domain.PeriodMonth,
		DistrictRaw:      "Чиланзар",
		HasFurniture:     true,
		TenantTypes:      []string{"family"},
		DescriptionClean: "Сдаю 2 комнатную квартиру в хорошем состоянии",
		ParseScore:       10,
	}

	id, err := store.Create(s.ctx, listing)
	s.NoError(err)
	s.Greater(id, int64(0))

	var dealType string
	err = s.db.GetContext(s.ctx, &dealType, "SELECT deal_type FROM listings WHERE id = $1", id)
	s.NoError(err)
	s.Equal("rent_long", dealType)

	var metro *string
	err = s.db.GetContext(s.ctx, &metro, "SELECT metro_raw FROM listings WHERE id = $1", id)
	s.NoError(err)
	s.Nil(metro)
}

func (s *PostgresIntegrationSuite) TestDuplicateStore_Create_PairIsIdempotent() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	original := s.mustPost(ch.ID, 1, now.Add(-time.Hour), "h1")
	dup := s.mustPost(ch.ID, 2, now, "h2")

	store := NewDuplicateStore(s.db)
	link := &domain.DuplicateLink{
		OriginalID:  original,
		DuplicateID: dup,
		Similarity:  1.0,
		MatchType:   domain.MatchTextExact,
	}

	created, err := store.Create(s.ctx, link)
	s.NoError(err)
	s.True(created)

	created, err = store.Create(s.ctx, link)
	s.NoError(err)
	s.False(created)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM duplicates")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	tm := NewTransactionManager(s.db)
	postStore := NewPostStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := postStore.Create(ctx, &domain.Post{
			PostUID:     "1001_99",
			ChannelID:   ch.ID,
			MessageID:   99,
			TextRaw:     "rollback me",
			TextLen:     11,
			PublishedAt: now,
		})
		if err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	exists, err := postStore.ExistsByUID(s.ctx, "1001_99")
	s.NoError(err)
	s.False(exists)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	ch := s.mustChannel(1001)
	now := time.Now().Truncate(time.Microsecond)

	tm := NewTransactionManager(s.db)
	postStore := NewPostStore(s.db)
	listingStore := NewListingStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		postID, err := postStore.Create(ctx, &domain.Post{
			PostUID:     "1001_100",
			ChannelID:   ch.ID,
			MessageID:   100,
			TextRaw:     "Сдаю квартиру",
			TextLen:     13,
			PublishedAt: now,
		})
		if err != nil {
			return err
		}
		_, err = listingStore.Create(ctx, &domain.Listing{
			PostID:       postID,
			IsRealEstate: true,
			DealType:     domain.DealRentLong,
			ObjectType:   domain.ObjectFlat,
		})
		return err
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM listings")
	s.NoError(err)
	s.Equal(1, count)
}
