package models

// Iconographic inventory tabs. Every field is a count of figures showing the
// named attribute; all four tables are one row per site.

type AnthropomorphInventoryModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	// General
	Frontal              int `json:"frontal" gorm:"default:0;check:frontal >= 0"`
	Profile              int `json:"profile" gorm:"default:0;check:profile >= 0"`
	UpsideDown           int `json:"upside_down" gorm:"default:0;check:upside_down >= 0"`
	Horizontal           int `json:"horizontal" gorm:"default:0;check:horizontal >= 0"`
	ImpaledAnthropomorph int `json:"impaled_anthropomorph" gorm:"default:0;check:impaled_anthropomorph >= 0"`
	Centralstyling       int `json:"centralstyling" gorm:"default:0;check:centralstyling >= 0"`
	NonCentralstyled     int `json:"non_centralstyled" gorm:"default:0;check:non_centralstyled >= 0"`

	// Headshapes
	HeadshapeRound  int `json:"headshape_round" gorm:"default:0;check:headshape_round >= 0"`
	HeadshapeSquare int `json:"headshape_square" gorm:"default:0;check:headshape_square >= 0"`
	HeadshapeUShape int `json:"headshape_u_shape" gorm:"default:0;check:headshape_u_shape >= 0"`
	HeadshapeOther  int `json:"headshape_other" gorm:"default:0;check:headshape_other >= 0"`

	// Body
	ArmsExtendedUp   int `json:"arms_extended_up" gorm:"default:0;check:arms_extended_up >= 0"`
	ArmsExtendedDown int `json:"arms_extended_down" gorm:"default:0;check:arms_extended_down >= 0"`
	RightHanded      int `json:"right_handed" gorm:"default:0;check:right_handed >= 0"`
	LeftHanded       int `json:"left_handed" gorm:"default:0;check:left_handed >= 0"`

	// Adornments / paraphernalia
	Headdress          int `json:"headdress" gorm:"default:0;check:headdress >= 0"`
	Mask               int `json:"mask" gorm:"default:0;check:mask >= 0"`
	Staff              int `json:"staff" gorm:"default:0;check:staff >= 0"`
	RabbitStick        int `json:"rabbit_stick" gorm:"default:0;check:rabbit_stick >= 0"`
	OtherParaphernalia int `json:"other_paraphernalia" gorm:"default:0;check:other_paraphernalia >= 0"`
}

func (AnthropomorphInventoryModel) TableName() string {
	return "anthropomorph_inventories"
}

type EnigmaticInventoryModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	BoxWithLegs     int `json:"box_with_legs" gorm:"default:0;check:box_with_legs >= 0"`
	ArchWithPortal  int `json:"arch_with_portal" gorm:"default:0;check:arch_with_portal >= 0"`
	CrenelatedBox   int `json:"crenelated_box" gorm:"default:0;check:crenelated_box >= 0"`
	CombShape       int `json:"comb_shape" gorm:"default:0;check:comb_shape >= 0"`
	Grid            int `json:"grid" gorm:"default:0;check:grid >= 0"`
	ZigZagLine      int `json:"zig_zag_line" gorm:"default:0;check:zig_zag_line >= 0"`
	Spiral          int `json:"spiral" gorm:"default:0;check:spiral >= 0"`
	SerpentineLines int `json:"serpentine_lines" gorm:"default:0;check:serpentine_lines >= 0"`
	OtherEnigmatics int `json:"other_enigmatics" gorm:"default:0;check:other_enigmatics >= 0"`
}

func (EnigmaticInventoryModel) TableName() string {
	return "enigmatic_inventories"
}

type ZoomorphInventoryModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	Feline             int `json:"feline" gorm:"default:0;check:feline >= 0"`
	Avian              int `json:"avian" gorm:"default:0;check:avian >= 0"`
	Snakes             int `json:"snakes" gorm:"default:0;check:snakes >= 0"`
	AntleredDeer       int `json:"antlered_deer" gorm:"default:0;check:antlered_deer >= 0"`
	DeerWithoutAntlers int `json:"deer_without_antlers" gorm:"default:0;check:deer_without_antlers >= 0"`
	OtherZoomorphs     int `json:"other_zoomorphs" gorm:"default:0;check:other_zoomorphs >= 0"`
}

func (ZoomorphInventoryModel) TableName() string {
	return "zoomorph_inventories"
}

type GeneralIconographicAttributesModel struct {
	ID int `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamps

	SiteID int        `json:"site_id" gorm:"column:site_id;not null;uniqueIndex"`
	Site   *SiteModel `json:"site,omitempty" gorm:"foreignKey:SiteID;references:ID;constraint:OnDelete:CASCADE"`

	AntlersWithDots            int `json:"antlers_with_dots" gorm:"default:0;check:antlers_with_dots >= 0"`
	SpeechBreath               int `json:"speech_breath" gorm:"default:0;check:speech_breath >= 0"`
	LargeClusterSingleMotif    int `json:"large_cluster_single_motif" gorm:"default:0;check:large_cluster_single_motif >= 0"`
	HalfBodiedFigures          int `json:"half_bodied_figures" gorm:"default:0;check:half_bodied_figures >= 0"`
	FullBodiedFigures          int `json:"full_bodied_figures" gorm:"default:0;check:full_bodied_figures >= 0"`
	DismemberedFigures         int `json:"dismembered_figures" gorm:"default:0;check:dismembered_figures >= 0"`
	ProcessionOfAnthropomorphs int `json:"procession_of_anthropomorphs" gorm:"default:0;check:procession_of_anthropomorphs >= 0"`
	ProcessionOfZoomorphs      int `json:"procession_of_zoomorphs" gorm:"default:0;check:procession_of_zoomorphs >= 0"`
	PeyotismMotif              int `json:"peyotism_motif" gorm:"default:0;check:peyotism_motif >= 0"`
	OtherworldJourneyMotif     int `json:"otherworld_journey_motif" gorm:"default:0;check:otherworld_journey_motif >= 0"`
}

func (GeneralIconographicAttributesModel) TableName() string {
	return "general_iconographic_attributes"
}
