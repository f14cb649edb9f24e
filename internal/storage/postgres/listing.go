package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"estate_ingest/internal/domain"
)

type ListingStore struct {
	db *sqlx.DB
}

func NewListingStore(db *sqlx.DB) *ListingStore {
	return &ListingStore{db: db}
}

func (s *ListingStore) Create(ctx context.Context, listing *domain.Listing) (int64, error) {
	query := `
		INSERT INTO listings (
			post_id, is_real_estate, deal_type, object_type,
			rooms, floor, total_floors, area_m2,
			price, currency, price_period, deposit, no_deposit,
			has_commission, commission_pct,
			district_raw, metro_raw, address_raw, landmark,
			condition, house_type,
			has_furniture, has_conditioner, has_washing_machine,
			has_refrigerator, has_internet, has_tv, has_balcony, has_parking,
			pets_allowed, kids_allowed, tenant_types,
			description_clean, parse_score, needs_review
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			$27, $28, $29, $30, $31, $32, $33, $34, $35
		)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		listing.PostID,
		listing.IsRealEstate,
		nullString(string(listing.DealType)),
		nullString(string(listing.ObjectType)),
		listing.Rooms,
		listing.Floor,
		listing.TotalFloors,
		listing.AreaM2,
		listing.Price,
		nullString(string(listing.Currency)),
		nullString(string(listing.PricePeriod)),
		listing.Deposit,
		listing.NoDeposit,
		listing.HasCommission,
		listing.CommissionPct,
		nullString(listing.DistrictRaw),
		nullString(listing.MetroRaw),
		nullString(listing.AddressRaw),
		nullString(listing.Landmark),
		nullString(listing.Condition),
		nullString(listing.HouseType),
		listing.HasFurniture,
		listing.HasConditioner,
		listing.HasWashingMachine,
		listing.HasRefrigerator,
		listing.HasInternet,
		listing.HasTV,
		listing.HasBalcony,
		listing.HasParking,
		listing.PetsAllowed,
		listing.KidsAllowed,
		pq.Array(listing.TenantTypes),
		nullString(listing.DescriptionClean),
		listing.ParseScore,
		listing.NeedsReview,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// nullString maps "" to SQL NULL so absent extractions stay absent.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
