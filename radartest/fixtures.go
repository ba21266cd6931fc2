package radartest

import radar "github.com/CheckFirstHQ/RADAR-API-client"

// dsaTitles maps article numbers to their titles for the articles the
// sample fixtures reference.
var dsaTitles = map[string]string{
	"17": "Statement of reasons",
	"25": "Online interface design and organisation",
	"26": "Advertising on online platforms",
	"31": "Compliance by design and by default",
	"39": "Additional online advertising transparency",
}

// SampleVersions returns three framework snapshots, most recent first, with
// enough variation between them to exercise version comparison, evolution
// tracking and cross-version search: infringements appear, gain observables
// and gain categories from 1.5 to 1.7.
func SampleVersions() []Version {
	darkPatterns := radar.Category{
		ID:          "dp",
		Name:        "Dark Patterns",
		Description: "Interface designs that steer users into unintended choices",
	}
	transparency := radar.Category{
		ID:          "tr",
		Name:        "Transparency",
		Description: "Failures to disclose mandatory information",
	}
	moderation := radar.Category{
		ID:          "mod",
		Name:        "Moderation Opacity",
		Description: "Opaque or inconsistent content moderation practices",
	}

	forcedContinuity15 := radar.Infringement{
		ID:          "dp_01",
		Name:        "Forced continuity",
		Description: "Subscriptions that renew silently after a trial",
		Category:    &radar.CategoryRef{ID: "dp", Name: "Dark Patterns"},
		Observables: []string{
			"trial converts to paid plan without notice",
			"cancellation flow hidden behind support contact",
		},
		DSAArticles: []string{"25"},
	}
	forcedContinuity := forcedContinuity15
	forcedContinuity.Observables = append([]string{}, forcedContinuity15.Observables...)
	forcedContinuity.Observables = append(forcedContinuity.Observables, "renewal price not shown at signup")

	confirmshaming := radar.Infringement{
		ID:          "dp_02",
		Name:        "Confirmshaming",
		Description: "Decline options worded to guilt users into accepting",
		Category:    &radar.CategoryRef{ID: "dp", Name: "Dark Patterns"},
		Observables: []string{
			"decline option worded to shame the user",
			"opt-out link styled as disabled",
		},
		DSAArticles: []string{"25", "31"},
	}

	undisclosedAds := radar.Infringement{
		ID:          "tr_01",
		Name:        "Undisclosed advertising",
		Description: "Commercial content presented as organic",
		Category:    &radar.CategoryRef{ID: "tr", Name: "Transparency"},
		Observables: []string{"sponsored results shown without label"},
		DSAArticles: []string{"26", "39"},
	}

	shadowBanning := radar.Infringement{
		ID:          "mod_01",
		Name:        "Shadow banning",
		Description: "Visibility restrictions applied without informing the user",
		Category:    &radar.CategoryRef{ID: "mod", Name: "Moderation Opacity"},
		Observables: []string{"reach restricted without notification to the user"},
		DSAArticles: []string{"17"},
	}

	return []Version{
		{
			Version:       "1.7",
			Date:          "2025-06-30",
			Categories:    []radar.Category{darkPatterns, transparency, moderation},
			Infringements: []radar.Infringement{forcedContinuity, confirmshaming, undisclosedAds, shadowBanning},
		},
		{
			Version:       "1.6",
			Date:          "2025-02-17",
			Categories:    []radar.Category{darkPatterns, transparency},
			Infringements: []radar.Infringement{forcedContinuity, confirmshaming, undisclosedAds},
		},
		{
			Version:       "1.5",
			Date:          "2024-11-02",
			Categories:    []radar.Category{darkPatterns, transparency},
			Infringements: []radar.Infringement{forcedContinuity15, undisclosedAds},
		},
	}
}
