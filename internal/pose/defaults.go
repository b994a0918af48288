package pose

import "github.com/xibuifgo/Group4-Game-Therapy/internal/features"

// DefaultTemplates returns the built-in templates in progression order,
// easiest first.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:        "Normal Standing Stance",
			Description: "Stand with your body upright and your feet together",
			Image:       "normal_standing.png",
			Angles:      []AngleTarget{{features.TorsoLean, 0}},
			Tolerances: Tolerances{
				Default:    20,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 15},
			},
			Check: CheckStanding,
		},
		{
			Name:        "T-Pose",
			Description: "Stand tall with both arms stretched out to the sides",
			Image:       "t_pose.png",
			Angles: []AngleTarget{
				{features.LeftArm, 180},
				{features.RightArm, 180},
				{features.TorsoLean, 0},
			},
			Tolerances: Tolerances{
				Default:    20,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 10},
			},
		},
		{
			Name:        "Star Pose",
			Description: "Stand with arms and legs spread wide like a star",
			Image:       "star_pose.png",
			Angles: []AngleTarget{
				{features.LeftShoulder, 90},
				{features.RightShoulder, 90},
				{features.TorsoLean, 0},
			},
			Tolerances: Tolerances{
				Default:    45,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 15},
			},
			Check: CheckStar,
		},
		{
			Name:        "Tandem Stance",
			Description: "Stand with one foot directly in front of the other",
			Image:       "tandem_stance.png",
			Angles: []AngleTarget{
				{features.LeftLeg, 180},
				{features.RightLeg, 180},
				{features.TorsoLean, 0},
			},
			Tolerances: Tolerances{
				Default:    25,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 10},
			},
			Check: CheckTandem,
		},
		{
			Name:        "Heel Raise",
			Description: "Stand on your toes, lifting your heels",
			Image:       "heel_raise.png",
			Angles: []AngleTarget{
				{features.LeftLeg, 180},
				{features.RightLeg, 180},
				{features.TorsoLean, 0},
			},
			Tolerances: Tolerances{
				Default:    25,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 15},
			},
			Check: CheckHeelRaise,
		},
		{
			Name:        "Airplane",
			Description: "Lean slightly forward with arms out like airplane wings",
			Image:       "airplane.png",
			Angles: []AngleTarget{
				{features.LeftArm, 180},
				{features.RightArm, 180},
				{features.TorsoLean, 20},
			},
			Tolerances: Tolerances{
				Default:    20,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 10},
			},
		},
		{
			Name:        "Flamingo Left",
			Description: "Stand on your right leg, lift your left leg up",
			Image:       "flamingo_left.png",
			Angles:      []AngleTarget{{features.TorsoLean, 0}},
			Tolerances: Tolerances{
				Default:    30,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 20},
			},
			Check: CheckFlamingoLeft,
		},
		{
			Name:        "Flamingo Right",
			Description: "Stand on your left leg, lift your right leg up",
			Image:       "flamingo_right.png",
			Angles:      []AngleTarget{{features.TorsoLean, 0}},
			Tolerances: Tolerances{
				Default:    30,
				PerFeature: map[features.Feature]float64{features.TorsoLean: 20},
			},
			Check: CheckFlamingoRight,
		},
	}
}

// DefaultCatalog returns a catalog of the built-in templates.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultTemplates())
}
