package domain

// DealType classifies what the ad offers or asks for.
type DealType string

const (
	DealRentLong   DealType = "rent_long"
	DealRentDaily  DealType = "rent_daily"
	DealSale       DealType = "sale"
	DealWantedRent DealType = "wanted_rent"
	DealWantedBuy  DealType = "wanted_buy"
	DealUnknown    DealType = "unknown"
)

// ObjectType classifies the property itself.
type ObjectType string

const (
	ObjectFlat       ObjectType = "flat"
	ObjectRoom       ObjectType = "room"
	ObjectStudio     ObjectType = "studio"
	ObjectHouse      ObjectType = "house"
	ObjectLand       ObjectType = "land"
	ObjectCommercial ObjectType = "commercial"
)

// Currency of an extracted price.
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyUZS Currency = "uzs"
)

// PricePeriod is derived from the deal type, not extracted.
type PricePeriod string

const (
	PeriodDay   PricePeriod = "day"
	PeriodMonth PricePeriod = "month"
	PeriodTotal PricePeriod = "total"
)

// Listing is the structured record extracted from one real-estate post.
// Nil pointer fields mean the extractor found nothing; that is normal, not
// an error. When IsRealEstate is false every other field is zero.
type Listing struct {
	ID     int64 `db:"id"`
	PostID int64 `db:"post_id"`

	IsRealEstate bool       `db:"is_real_estate"`
	DealType     DealType   `db:"deal_type"`
	ObjectType   ObjectType `db:"object_type"`

	Rooms       *int     `db:"rooms"`
	Floor       *int     `db:"floor"`
	TotalFloors *int     `db:"total_floors"`
	AreaM2      *float64 `db:"area_m2"`

	Price       *int        `db:"price"`
	Currency    Currency    `db:"currency"`
	PricePeriod PricePeriod `db:"price_period"`
	Deposit     *int        `db:"deposit"`
	NoDeposit   bool        `db:"no_deposit"`

	HasCommission bool `db:"has_commission"`
	CommissionPct *int `db:"commission_pct"`

	DistrictRaw string `db:"district_raw"`
	MetroRaw    string `db:"metro_raw"`
	AddressRaw  string `db:"address_raw"`
	Landmark    string `db:"landmark"`

	Condition string `db:"condition"`
	HouseType string `db:"house_type"`

	HasFurniture      bool `db:"has_furniture"`
	HasConditioner    bool `db:"has_conditioner"`
	HasWashingMachine bool `db:"has_washing_machine"`
	HasRefrigerator   bool `db:"has_refrigerator"`
	HasInternet       bool `db:"has_internet"`
	HasTV             bool `db:"has_tv"`
	HasBalcony        bool `db:"has_balcony"`
	HasParking        bool `db:"has_parking"`

	PetsAllowed bool     `db:"pets_allowed"`
	KidsAllowed bool     `db:"kids_allowed"`
	TenantTypes []string `db:"-"`

	Phones           []string `db:"-"`
	DescriptionClean string   `db:"description_clean"`

	ParseScore  int  `db:"parse_score"`
	NeedsReview bool `db:"needs_review"`
}

// DuplicateMatchType names how two posts were linked.
type DuplicateMatchType string

const (
	MatchTextExact DuplicateMatchType = "text_exact"
	MatchPhone     DuplicateMatchType = "phone"
)

// DuplicateLink ties a later post to the earlier one describing the same
// physical listing. OriginalID always refers to the post with the earlier
// published_at of the pair.
type DuplicateLink struct {
	ID          int64              `db:"id"`
	OriginalID  int64              `db:"original_id"`
	DuplicateID int64              `db:"duplicate_id"`
	Similarity  float64            `db:"similarity"`
	MatchType   DuplicateMatchType `db:"match_type"`
}
