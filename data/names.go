package data

// ActionNames is the closed set of action identifiers
var ActionNames = []string{
	"farm_expansion",
	"meeting_place",
	"grain_seeds",
	"farmland",
	"lessons",
	"day_laborer",
	"forest",
	"clay_pit",
	"reed_bank",
	"fishing",
	"major_improvement",
	"fencing",
	"grain_utilization",
	"sheep_market",
	"basic_wish_for_children",
	"house_redevelopment",
	"western_quarry",
	"vegetable_seeds",
	"pig_market",
	"cattle_market",
	"eastern_quarry",
	"urgent_wish_for_children",
	"cultivation",
	"farm_redevelopment",
	"copse",
	"grove",
	"3_hollow",
	"4_hollow",
	"3_resource_market",
	"4_resource_market",
	"3_lessons",
	"4_lessons",
	"traveling_players",
}

// MajorImprovementNames is the closed set of major improvement cards
var MajorImprovementNames = []string{
	"2_fireplace",
	"3_fireplace",
	"4_cooking_hearth",
	"5_cooking_hearth",
	"well",
	"clay_oven",
	"stone_oven",
	"joinery",
	"pottery",
	"basketmakers_workshop",
}

// MinorImprovementNames is the closed set of minor improvement cards
var MinorImprovementNames = []string{
	"shifting_cultivation",
	"clay_embankment",
	"young_animal_market",
	"drinking_trough",
	"rammed_clay",
	"handplow",
	"threshing_board",
	"sleeping_corner",
	"manger",
	"big_country",
	"wool_blankets",
	"pond_hut",
	"milk_jug",
	"claypipe",
	"junk_room",
	"basket",
	"dutch_windmill",
	"corn_scoop",
	"large_greenhouse",
	"clearing_spade",
	"lumber_mill",
	"canoe",
	"stone_tongs",
	"shepherds_crook",
	"mini_pasture",
	"market_stall",
	"caravan",
	"carpenters_parlor",
	"mining_hammer",
	"moldboard_plow",
	"lasso",
	"bread_paddle",
	"mantlepiece",
	"bottles",
	"loom",
	"strawberry_patch",
	"herring_pot",
	"butter_churn",
	"brook",
	"scullery",
	"three_field_rotation",
	"pitchfork",
	"sack_cart",
	"beanfield",
	"thick_forest",
	"loam_pit",
	"hard_porcelain",
	"acorns_basket",
}

// OccupationNames is the closed set of occupation cards
var OccupationNames = []string{
	"animal_tamer",
	"conservator",
	"hedge_keeper",
	"plow_driver",
	"adoptive_parents",
	"stable_architect",
	"grocer",
	"mushroom_collector",
	"roughcaster",
	"wall_builder",
	"scythe_worker",
	"seasonal_worker",
	"wood_cutter",
	"firewood_collector",
	"clay_hut_builder",
	"frame_builder",
	"priest",
	"braggart",
	"harpooner",
	"stonecutter",
	"animal_dealer",
	"conjurer",
	"lutenist",
	"pig_breeder",
	"cottager",
	"groom",
	"assistant_tiller",
	"master_bricklayer",
	"scholar",
	"organic_farmer",
	"tutor",
	"consultant",
	"sheep_walker",
	"manservant",
	"oven_firing_boy",
	"paper_maker",
	"childless",
	"small_scale_farmer",
	"geologist",
	"roof_ballaster",
	"carpenter",
	"house_steward",
	"greengrocer",
	"brushwood_collector",
	"storehouse_keeper",
	"pastor",
	"sheep_whisperer",
	"cattle_feeder",
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
