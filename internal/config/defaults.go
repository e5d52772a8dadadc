package config

// Default returns the built-in configuration. The tables mirror the alert
// formats the four supported providers were actually sending; everything
// can be overridden through the user config file.
func Default() Config {
	var cfg Config

	cfg.App.DumpDir = "data/email_dumps"
	cfg.App.DataDir = "data"
	cfg.App.Workers = 4
	cfg.App.DocsPerSecond = 0

	cfg.Providers = []ProviderPatterns{
		{
			Name:             "Glassdoor",
			SenderAny:        []string{"noreply@glassdoor.com", "jobalert@glassdoor.com"},
			FooterRegexp:     `(?i)Copyright.*Glassdoor`,
			LooseKeyword:     "glassdoor",
			SectionSeparator: `^--- .+\.txt ---$`,
		},
		{
			Name:         "LinkedIn",
			SenderAny:    []string{"jobalerts-noreply@linkedin.com", "jobs-noreply@linkedin.com"},
			FooterRegexp: `(?i)Copyright.*LinkedIn`,
		},
		{
			Name:         "Indeed",
			SenderAny:    []string{"alert@indeed.com", "invitetoapply@indeed.com", "donotreply@indeed.com"},
			FooterRegexp: `(?i)Copyright.*Indeed`,
		},
		{
			Name:         "GoogleCareers",
			SenderAny:    []string{"careers-noreply@google.com", "notify-noreply@google.com"},
			FooterRegexp: `(?i)(Copyright|©).{0,40}Google`,
			LooseKeyword: "google careers",
		},
	}

	ex := &cfg.Extract
	ex.MetadataScanLines = 50

	ex.NoisePhrases = []string{
		"skip to content",
		"skip to main content",
		"screen reader users",
		"use the tab key to navigate",
		"your job alert has been created",
	}
	ex.AlertCreatedPhrases = []string{
		"job alert has been created",
		"job alert created",
		"alert was created",
	}
	ex.ListingMarkers = []string{
		"job alerts",
		"new jobs",
		"your job listings for",
		"jobs for you",
		"recommended for you",
	}
	ex.SubjectKeywords = []string{
		"job", "jobs", "career", "careers", "opportunity", "opportunities",
		"alert", "hiring", "opening", "position",
	}

	ex.TitlePunctuation = `-/&[]()'.,+#:`

	ex.Positions = Rule{
		Tag: "position",
		Any: []string{
			// role nouns
			"engineer", "developer", "programmer", "architect", "analyst",
			"scientist", "designer", "consultant", "administrator",
			"manager", "director", "specialist", "technician", "intern",
			"coordinator", "officer", "recruiter", "accountant", "devops",
			"sre", "writer",
			// seniority modifiers
			"senior", "junior", "principal", "staff", "sr", "jr",
			// localized stems: these match on purpose so the English
			// gate can log the skip instead of silently ignoring the line
			"ingénieur", "développeur", "entwickler", "desarrollador",
		},
	}

	ex.Locations = LocationRule{
		Names: []string{
			"Remote", "Hybrid",
			"New York", "San Francisco", "Seattle", "Austin", "Chicago",
			"Boston", "Atlanta", "Denver", "Dallas", "Los Angeles",
			"Mountain View", "Sunnyvale", "Kirkland", "United States",
			"London", "Toronto", "Dublin", "Berlin", "Singapore",
			"Bangkok", "Sydney",
		},
		MarkerPrefix: "place ",
	}

	ex.Qualifications = Rule{
		Tag: "qualification",
		Any: []string{
			"bachelor", "master", "phd", "degree",
			"years of experience", "experience in", "experience with",
			"qualification", "proficiency", "proficient",
			"certification", "certified", "fluent", "must have",
		},
		// Benefits boilerplate keeps matching "qualification"-ish words;
		// the paid-vacation blurb is the known false positive.
		Except: []string{"paid vacation"},
	}

	ex.RemoteSignals = []string{
		"remote", "hybrid", "work from home", "work-from-home",
	}

	// Broader tables for the permissive GoogleCareers pass. Their alerts
	// often carry org/function names where other providers put titles.
	ex.Fallback = FallbackRules{
		Positions: Rule{
			Tag: "position",
			Any: append([]string{
				"engineering", "technical", "cloud", "program", "sales",
				"marketing", "support", "operations", "strategy",
				"research", "solutions", "partner", "product",
			}, ex.Positions.Any...),
		},
		Locations: LocationRule{
			Names: append([]string{
				"Zurich", "Hyderabad", "Warsaw", "Tokyo", "Taipei",
			}, ex.Locations.Names...),
			MarkerPrefix: ex.Locations.MarkerPrefix,
		},
		Qualifications: Rule{
			Tag: "qualification",
			Any: append([]string{
				"minimum qualifications", "preferred qualifications",
				"experience",
			}, ex.Qualifications.Any...),
			Except: ex.Qualifications.Except,
		},
	}

	return cfg
}
