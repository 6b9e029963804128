package forms

import "github.com/rockartdb/rockartdb-backend/src/models"

func ValidateAnthropomorphInventory(inv *models.AnthropomorphInventoryModel) error {
	errs := Errors{}
	checkNonNegative(errs, "frontal", inv.Frontal)
	checkNonNegative(errs, "profile", inv.Profile)
	checkNonNegative(errs, "upside_down", inv.UpsideDown)
	checkNonNegative(errs, "horizontal", inv.Horizontal)
	checkNonNegative(errs, "impaled_anthropomorph", inv.ImpaledAnthropomorph)
	checkNonNegative(errs, "centralstyling", inv.Centralstyling)
	checkNonNegative(errs, "non_centralstyled", inv.NonCentralstyled)
	checkNonNegative(errs, "headshape_round", inv.HeadshapeRound)
	checkNonNegative(errs, "headshape_square", inv.HeadshapeSquare)
	checkNonNegative(errs, "headshape_u_shape", inv.HeadshapeUShape)
	checkNonNegative(errs, "headshape_other", inv.HeadshapeOther)
	checkNonNegative(errs, "arms_extended_up", inv.ArmsExtendedUp)
	checkNonNegative(errs, "arms_extended_down", inv.ArmsExtendedDown)
	checkNonNegative(errs, "right_handed", inv.RightHanded)
	checkNonNegative(errs, "left_handed", inv.LeftHanded)
	checkNonNegative(errs, "headdress", inv.Headdress)
	checkNonNegative(errs, "mask", inv.Mask)
	checkNonNegative(errs, "staff", inv.Staff)
	checkNonNegative(errs, "rabbit_stick", inv.RabbitStick)
	checkNonNegative(errs, "other_paraphernalia", inv.OtherParaphernalia)
	return errs.err()
}

func ValidateEnigmaticInventory(inv *models.EnigmaticInventoryModel) error {
	errs := Errors{}
	checkNonNegative(errs, "box_with_legs", inv.BoxWithLegs)
	checkNonNegative(errs, "arch_with_portal", inv.ArchWithPortal)
	checkNonNegative(errs, "crenelated_box", inv.CrenelatedBox)
	checkNonNegative(errs, "comb_shape", inv.CombShape)
	checkNonNegative(errs, "grid", inv.Grid)
	checkNonNegative(errs, "zig_zag_line", inv.ZigZagLine)
	checkNonNegative(errs, "spiral", inv.Spiral)
	checkNonNegative(errs, "serpentine_lines", inv.SerpentineLines)
	checkNonNegative(errs, "other_enigmatics", inv.OtherEnigmatics)
	return errs.err()
}

func ValidateZoomorphInventory(inv *models.ZoomorphInventoryModel) error {
	errs := Errors{}
	checkNonNegative(errs, "feline", inv.Feline)
	checkNonNegative(errs, "avian", inv.Avian)
	checkNonNegative(errs, "snakes", inv.Snakes)
	checkNonNegative(errs, "antlered_deer", inv.AntleredDeer)
	checkNonNegative(errs, "deer_without_antlers", inv.DeerWithoutAntlers)
	checkNonNegative(errs, "other_zoomorphs", inv.OtherZoomorphs)
	return errs.err()
}

func ValidateGeneralIconographicAttributes(inv *models.GeneralIconographicAttributesModel) error {
	errs := Errors{}
	checkNonNegative(errs, "antlers_with_dots", inv.AntlersWithDots)
	checkNonNegative(errs, "speech_breath", inv.SpeechBreath)
	checkNonNegative(errs, "large_cluster_single_motif", inv.LargeClusterSingleMotif)
	checkNonNegative(errs, "half_bodied_figures", inv.HalfBodiedFigures)
	checkNonNegative(errs, "full_bodied_figures", inv.FullBodiedFigures)
	checkNonNegative(errs, "dismembered_figures", inv.DismemberedFigures)
	checkNonNegative(errs, "procession_of_anthropomorphs", inv.ProcessionOfAnthropomorphs)
	checkNonNegative(errs, "procession_of_zoomorphs", inv.ProcessionOfZoomorphs)
	checkNonNegative(errs, "peyotism_motif", inv.PeyotismMotif)
	checkNonNegative(errs, "otherworld_journey_motif", inv.OtherworldJourneyMotif)
	return errs.err()
}
