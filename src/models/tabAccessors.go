package models

// Accessors shared by the singleton tab tables so the generic tab service
// can enforce one-row-per-site semantics without reflection.

func (m *RockArtConditionModel) GetID() int       { return m.ID }
func (m *RockArtConditionModel) GetSiteID() int   { return m.SiteID }
func (m *RockArtConditionModel) SetSiteID(id int) { m.SiteID = id }

func (m *RockArtAttributesModel) GetID() int       { return m.ID }
func (m *RockArtAttributesModel) GetSiteID() int   { return m.SiteID }
func (m *RockArtAttributesModel) SetSiteID(id int) { m.SiteID = id }

func (m *AnthropomorphInventoryModel) GetID() int       { return m.ID }
func (m *AnthropomorphInventoryModel) GetSiteID() int   { return m.SiteID }
func (m *AnthropomorphInventoryModel) SetSiteID(id int) { m.SiteID = id }

func (m *EnigmaticInventoryModel) GetID() int       { return m.ID }
func (m *EnigmaticInventoryModel) GetSiteID() int   { return m.SiteID }
func (m *EnigmaticInventoryModel) SetSiteID(id int) { m.SiteID = id }

func (m *ZoomorphInventoryModel) GetID() int       { return m.ID }
func (m *ZoomorphInventoryModel) GetSiteID() int   { return m.SiteID }
func (m *ZoomorphInventoryModel) SetSiteID(id int) { m.SiteID = id }

func (m *GeneralIconographicAttributesModel) GetID() int       { return m.ID }
func (m *GeneralIconographicAttributesModel) GetSiteID() int   { return m.SiteID }
func (m *GeneralIconographicAttributesModel) SetSiteID(id int) { m.SiteID = id }
