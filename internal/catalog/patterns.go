package catalog

const (
	yearPattern  = `(?:19[0-9]|20[0-2])[0-9]`
	monthPattern = `0[1-9]|1[0-2]`
	dayPattern   = `[0-2][0-9]|3[01]`

	seasonRangePattern = `(?:Complete` + delim + `*)?` + delim + `*(?:s(?:easons?)?)` + delim +
		`*(?:s?[0-9]{1,2}[\s]*(?:(?:\-|(?:\s*to\s*))[\s]*s?[0-9]{1,2}))(?:` + delim + `*Complete)?`

	episodeNamePattern = `((?:[Pp](?:ar)?t` + delim + `*[0-9]|(?:[A-Za-z]|[0-9])[a-z]*(?:` + delim + `|$))+)`

	monthRulePattern = `(?:` + yearPattern + `)` + delim + `(` + monthPattern + `)` + delim + `(?:` + dayPattern + `)`
	dayRulePattern   = `(?:` + yearPattern + `)` + delim + `(?:` + monthPattern + `)` + delim + `(` + dayPattern + `)`

	preWebsiteEncoderPattern = `[^\s\.\[\]\-\(\)]+\)\s*\[[^\s\-]+\]|[^\s\.\[\]\-\(\)]+\s*(?:-\s)?[^\s\.\[\]\-]+$`
)

// order is the field processing order of the built-in catalogue.
var order = []string{
	"resolution",
	"quality",
	"seasons",
	"episodes",
	"year",
	"month",
	"day",
	"codec",
	"audio",
	"region",
	"extended",
	"hardcoded",
	"proper",
	"repack",
	"filetype",
	"widescreen",
	"sbs",
	"site",
	"documentary",
	"languages",
	"subtitles",
	"unrated",
	"size",
	"bitDepth",
	"3d",
	"internal",
	"readnfo",
	"network",
	"fps",
	"hdr",
	"limited",
	"remastered",
	"directorsCut",
	"upscaled",
	"untouched",
	"remux",
	"internationalCut",
	"genres",
}

// overlapExempt lists fields whose text legitimately co-locates, as in
// "5x09" carrying both season and episode.
var overlapExempt = []string{"seasons", "episodes", "languages", "subtitles", "sbs"}

// unbounded fields carry their own anchoring and are not wrapped in word
// boundaries.
var unbounded = map[string]bool{
	"seasons":   true,
	"episodes":  true,
	"site":      true,
	"languages": true,
	"genres":    true,
}

// afterTitle restricts fields that resemble title words to text after the
// title anchor. Fields with triggers only apply the restriction when a
// trigger matches.
var afterTitle = map[string][]string{
	"languages": nil,
	"audio":     {`LiNE`},
	"network":   {`Hallmark`},
	"untouched": nil,
	"internal":  nil,
	"limited":   nil,
	"proper":    nil,
	"extended":  {`(EXTENDED` + delim + `(?!(?:CUT|EDITIONS?)))`},
}

var booleans = []string{
	"extended", "hardcoded", "proper", "repack", "widescreen", "unrated", "3d",
	"internal", "readnfo", "documentary", "hdr", "limited", "remastered",
	"directorsCut", "upscaled", "untouched", "remux", "internationalCut",
}

var integers = []string{"year", "month", "day", "bitDepth", "fps"}

func episodeRules() []RuleDef {
	return plain(
		`(?<![a-z])(?:e|ep)(?:\(?[0-9]{1,2}(?:-?(?:e|ep)?(?:[0-9]{1,2}))?\)?)(?![0-9])`,
		`\s\-\s\d{1,3}\s`,
		`\b[0-9]{1,2}x([0-9]{2})\b`,
		`\bepisod(?:e|io)`+delim+`\d{1,2}\b`,
	)
}

func seasonRules() []RuleDef {
	return plain(
		`\b(?:Seasons?)`+delim+`(\d{1,2})(?:(?:`+delim+`|&|and|to){1,3}(\d{1,2})){2,}\b`,
		`\ss?(\d{1,2})\s\-\s\d{1,2}\s`,
		`\b`+seasonRangePattern+`\b`,
		`(?:s\d{1,2}[.+\s]*){2,}\b`,
		`\b(?:Complete`+delim+`)?s([0-9]{1,2})`+linkRules(episodeRules())+`?\b`,
		`\b([0-9]{1,2})x[0-9]{2}\b`,
		`[0-9]{1,2}(?:st|nd|rd|th)`+delim+`season`,
		`Series`+delim+`\d{1,2}`,
		`\b(?:Complete`+delim+`)?Season[\. -][0-9]{1,2}\b`,
	)
}

func allEpisodeRules() []RuleDef {
	// Part numbers only follow the word-form season rules.
	seasons := seasonRules()
	return append(episodeRules(), RuleDef{
		Pattern: linkRules(seasons[6:]) + delim + `*P(?:ar)?t` + delim + `*(\d{1,3})`,
	})
}

func resolutionRules() []RuleDef {
	return []RuleDef{
		transformed(`([0-9]{3,4}(?:p|i))`, Lower()),
		named(`(8K|7680`+delim+`?x`+delim+`?4320p?)`, "8K"),
		named(`(5K|5120`+delim+`?x`+delim+`?2880p?)`, "5K"),
		named(`(4K UHD|UHD|3840`+delim+`?x`+delim+`?2160p?)`, "2160p"),
		named(`(4K|4096`+delim+`?x`+delim+`?2160p?)`, "4K"),
		named(`(QHD|QuadHD|WQHD|2560`+delim+`?x`+delim+`?1440p?)`, "1440p"),
		named(`(2K|2048`+delim+`?x`+delim+`?1080p?)`, "2K"),
		named(`(Full HD|FHD|1920`+delim+`?x`+delim+`?1080p?)`, "1080p"),
		named(`(HD|1280`+delim+`?x`+delim+`?720p?)`, "720p"),
		named(`(qHD)`, "540p"),
		named(`(SD)`, "480p"),
	}
}

func qualityRules() []RuleDef {
	return []RuleDef{
		named(`WEB[ -\.]?DL(?:Rip|Mux)?|HDRip`, "WEB-DL"),
		named(`WEB[ -]?Cap`, "WEBCap"),
		named(`W[EB]B[ -]?(?:Rip)|WEB`, "WEBRip"),
		named(`(?:HD)?CAM(?:-?Rip)?`, "Cam"),
		named(`(?:HD)?TS|TELESYNC|PDVD|PreDVDRip`, "Telesync"),
		named(`WP|WORKPRINT`, "Workprint"),
		named(`(?:HD)?TC|TELECINE`, "Telecine"),
		named(`(?:DVD)?SCR(?:EENER)?|BDSCR`, "Screener"),
		named(`DDC`, "Digital Distribution Copy"),
		named(`DVD-?(?:Rip|Mux)`, "DVD-Rip"),
		named(`DVDR|DVD-Full|Full-rip`, "DVD-R"),
		named(`PDTV|DVBRip`, "PDTV"),
		named(`DSR(?:ip)?|SATRip|DTHRip`, "DSRip"),
		named(`AHDTV(?:Mux)?`, "AHDTV"),
		named(`HDTV(?:Rip)?`, "HDTV"),
		named(`D?TVRip|DVBRip`, "TVRip"),
		named(`VODR(?:ip)?`, "VODRip"),
		named(`HD-Rip`, "HD-Rip"),
		named(`Blu-?Ray`+delim+`Rip|BDR(?:ip)?`, "BDRip"),
		named(`Blu-?Ray|(?:US|JP)?BD(?:remux)?`, "Blu-ray"),
		named(`BR-?Rip`, "BRRip"),
		named(`HDDVD`, "HD DVD"),
		named(`PPV(?:Rip)?`, "Pay-Per-View Rip"),
	}
}

func networkRules() []RuleDef {
	// Most networks are only trusted directly before a quality tag.
	anchored := suffixed(linkRules(qualityRules()), []RuleDef{
		named(`ATVP`, "Apple TV+"),
		named(`AMZN|Amazon`, "Amazon Studios"),
		named(`NF|Netflix`, "Netflix"),
		named(`NICK`, "Nickelodeon"),
		named(`RED`, "YouTube Premium"),
		named(`DSNY?P`, "Disney Plus"),
		named(`DSNY`, "DisneyNOW"),
		named(`HMAX`, "HBO Max"),
		named(`HBO`, "HBO"),
		named(`HULU`, "Hulu Networks"),
		named(`MS?NBC`, "MSNBC"),
		named(`DCU`, "DC Universe"),
		named(`ID`, "Investigation Discovery"),
		named(`iT`, "iTunes"),
		named(`AS`, "Adult Swim"),
		named(`CRAV`, "Crave"),
		named(`CC`, "Comedy Central"),
		named(`SESO`, "Seeso"),
		named(`VRV`, "VRV"),
		named(`PCOK`, "Peacock"),
		named(`CBS`, "CBS"),
		named(`iP`, "BBC iPlayer"),
		named(`NBC`, "NBC"),
		named(`AMC`, "AMC"),
		named(`PBS`, "PBS"),
		named(`STAN`, "Stan."),
		named(`RTE`, "RTE Player"),
		named(`CR`, "Crunchyroll"),
		named(`ANPL`, "Animal Planet Live"),
		named(`DTV`, "DirecTV Stream"),
		named(`VICE`, "VICE"),
	}, delim)
	return append(anchored,
		named(`BBC`, "BBC"),
		named(`Hoichoi`, "Hoichoi"),
		named(`Zee5`, "ZEE5"),
		named(`Hallmark`, "Hallmark"),
		named(`Sony\s?LIV`, "SONY LIV"),
	)
}

func codecRules() []RuleDef {
	return []RuleDef{
		named(`xvid`, "Xvid"),
		named(`av1`, "AV1"),
		named(`[hx]`+delim+`?264`, "H.264"),
		named(`AVC`, "H.264"),
		named(`HEVC(?:`+delim+`Main`+delim+`?10P?)`, "H.265 Main 10"),
		named(`[hx]`+delim+`?265`, "H.265"),
		named(`HEVC`, "H.265"),
		named(`[h]`+delim+`?263`, "H.263"),
		named(`VC-1`, "VC-1"),
		named(`MPEG`+delim+`?2`, "MPEG-2"),
	}
}

func audioRules() []RuleDef {
	rules := withChannels([]RuleDef{
		named(`TrueHD`, "Dolby TrueHD"),
		named(`Atmos`, "Dolby Atmos"),
		named(`DD`+delim+`?EX`, "Dolby Digital EX"),
		named(`DD|AC`+delim+`?3|DolbyD`, "Dolby Digital"),
		named(`DDP|E`+delim+`?AC`+delim+`?3|EC`+delim+`?3`, "Dolby Digital Plus"),
		named(`DTS`+delim+`?HD(?:`+delim+`?(?:MA|Masters?(?:`+delim+`Audio)?))`, "DTS-HD MA"),
		named(`DTSMA`, "DTS-HD MA"),
		named(`DTS`+delim+`?HD`, "DTS-HD"),
		named(`DTS`+delim+`?ES`, "DTS-ES"),
		named(`DTS`+delim+`?EX`, "DTS-EX"),
		named(`DTS`+delim+`?X`, "DTS:X"),
		named(`DTS`, "DTS"),
		named(`HE`+delim+`?AAC`, "HE-AAC"),
		named(`HE`+delim+`?AACv2`, "HE-AAC v2"),
		named(`AAC`+delim+`?LC`, "AAC-LC"),
		named(`AAC`, "AAC"),
		named(`Dual`+delim+`Audios?`, "Dual"),
		named(`Custom`+delim+`Audios?`, "Custom"),
		named(`FLAC`, "FLAC"),
		named(`OGG`, "OGG"),
	})
	return append(rules,
		named(`7.1(?:`+delim+`?ch(?:annel)?(?:`+delim+`?Audio)?)?`, "7.1"),
		named(`5.1(?:`+delim+`?ch(?:annel)?(?:`+delim+`?Audio)?)?`, "5.1"),
		transformed(`MP3`, Upper()),
		named(`2.0(?:`+delim+`?ch(?:annel)?(?:`+delim+`?Audio)?)?|2CH|stereo`, "Dual"),
		named(`1`+delim+`?Ch(?:annel)?(?:`+delim+`?Audio)?`, "Mono"),
		named(`(?:Original|Org)`+delim+`Aud(?:io)?`, "Original"),
		named(`LiNE`, "LiNE"),
	)
}

func subtitleRules() []RuleDef {
	subsList := `(?:` + linkEntries(languages) + delim + `*)`
	return []RuleDef{
		// The first and second-last rules are reused by the language rules.
		{Pattern: `sub(?:title|bed)?s?` + delim + `*` + subsList + `+`},
		{Pattern: `(?:soft` + delim + `*)?` + subsList + `+(?:(?:m(?:ulti(?:ple)?)?` + delim + `*)?sub(?:title|bed)?s?)`},
		named(`VOSTFR`, "French"),
		{Pattern: `(?:m(?:ulti(?:ple)?)?` + delim + `*)sub(?:title|bed)?s?`},
		{Pattern: `(?:m(?:ulti(?:ple)?)?[\.\s\-\+_\/]*)?sub(?:title|bed)?s?` + delim + `*`},
	}
}

func languageRules() []RuleDef {
	subs := subtitleRules()
	langList := `\b(?:` + linkEntries(languages) + `(?:` + delim + `+(?:dub(?:bed)?|` +
		linkRules(audioRules()) + `))?(?:` + delim + `+|\b))`
	return plain(
		`(`+langList+`+)(?:`+delim+`*`+subs[0].Pattern+`)`,
		`(`+langList+`+)(?!`+delim+`*`+linkRules(subs)+`)`,
		`(`+langList+`+)(?:`+delim+`*`+subs[len(subs)-2].Pattern+`)`,
	)
}

func filetypeRules() []RuleDef {
	return []RuleDef{
		transformed(`\.?(MKV|AVI|(?:SRT|SUB|SSA)$)`, Upper()),
		named(`MP-?4`, "MP4"),
		named(`\.?(iso)$`, "ISO"),
	}
}

func ruleTable() map[string][]RuleDef {
	return map[string][]RuleDef{
		"resolution": resolutionRules(),
		"quality":    qualityRules(),
		"seasons":    seasonRules(),
		"episodes":   allEpisodeRules(),
		"year":       plain(yearPattern),
		"month":      plain(monthRulePattern),
		"day":        plain(dayRulePattern),
		"codec":      codecRules(),
		"audio":      audioRules(),
		"region":     {transformed(`R[0-9]`, Upper())},
		"extended":   plain(`(EXTENDED)`, `(EXTENDED`+delim+`(?:(?:CUT|EDITIONS?)))`),
		"hardcoded":  plain(`HC`),
		"proper":     plain(`PROPER`),
		"repack":     plain(`REPACK`),
		"filetype":   filetypeRules(),
		"widescreen": plain(`WS`),
		"sbs":        {named(`Half-SBS`, "Half SBS"), transformed(`SBS`, Upper())},
		"site": plain(
			`^(www\.[\w-]+\.[\w-]+)\s+-\s*`,
			`^((?:www\.)?[\w-]+\.[\w-]+(?:\.[\w-]+)?)\s+-\s*`,
			`^(\[ ?([^\]]+?)\s?\])`,
		),
		"documentary":      plain(`DOCU(?:menta?ry)?`),
		"languages":        languageRules(),
		"subtitles":        subtitleRules(),
		"unrated":          plain(`UNRATED`),
		"size":             {transformed(`\d+(?:\.\d+)?\s?(?:GB|MB)`, Upper(), Replace(" ", ""))},
		"bitDepth":         plain(`(8|10)-?bits?`),
		"3d":               plain(`3D`),
		"internal":         plain(`iNTERNAL`),
		"readnfo":          plain(`READNFO`),
		"network":          networkRules(),
		"fps":              plain(`([1-9][0-9]{1,2})` + delim + `*fps`),
		"hdr":              plain(`HDR(?:10)?`),
		"limited":          plain(`LIMITED`),
		"remastered":       plain(`REMASTERED`),
		"directorsCut":     plain(`DC|Director'?s.?Cut`),
		"upscaled":         plain(`(?:AI` + delim + `*)?upscaled?`),
		"untouched":        plain(`untouched`),
		"remux":            plain(`REMUX`),
		"internationalCut": plain(`International` + delim + `Cut`),
		// Spaces before the list are only allowed after a boundary or punctuation.
		"genres": plain(`\b\s*[\(\-\]]+\s*((?:` + linkEntries(genres) + delim + `?)+)\b`),
	}
}

func shape(key string) (Kind, Extractor, Canon) {
	switch key {
	case "seasons", "episodes":
		return KindIntList, ExtractRange, CanonNone
	case "languages":
		return KindStringList, ExtractSplit, CanonLanguages
	case "subtitles":
		return KindStringList, ExtractSubtitles, CanonLanguages
	case "genres":
		return KindStringList, ExtractSplit, CanonGenres
	}
	for _, k := range integers {
		if k == key {
			return KindInt, ExtractCapture, CanonNone
		}
	}
	for _, k := range booleans {
		if k == key {
			return KindBool, ExtractCapture, CanonNone
		}
	}
	return KindString, ExtractCapture, CanonNone
}

// DefaultDefinition returns the built-in catalogue definition. Each call
// returns a fresh value the caller may modify before passing it to Build.
func DefaultDefinition() Definition {
	rules := ruleTable()
	fields := make([]FieldDef, 0, len(order))
	for _, key := range order {
		kind, extract, canon := shape(key)
		triggers, restricted := afterTitle[key]
		fields = append(fields, FieldDef{
			Key:        key,
			Kind:       kind,
			Extract:    extract,
			Canon:      canon,
			Rules:      rules[key],
			Bounded:    !unbounded[key],
			AfterTitle: restricted,
			Triggers:   append([]string(nil), triggers...),
		})
	}

	seasons := seasonRules()
	episodes := allEpisodeRules()
	subs := subtitleRules()
	return Definition{
		Fields:        fields,
		OverlapExempt: append([]string(nil), overlapExempt...),
		TitleAnchor:   `(?:` + linkRules(seasons) + `|` + yearPattern + `|720p|1080p)`,
		EpisodeAnchor: `(?:` + linkRules(episodes) + `|` + dayRulePattern + `|` + yearPattern + `)`,
		Filetype:      linkRules(filetypeRules()),
		Languages:     append([]Entry(nil), languages...),
		Genres:        append([]Entry(nil), genres...),
		Exceptions:    append([]ExceptionRecord(nil), exceptions...),
		Hooks: Hooks{
			EpisodeName:       episodeNamePattern,
			PreWebsiteEncoder: preWebsiteEncoderPattern,
			CompleteSeries:    link(completeSeries...),
			SubtitleMarker:    linkRules(subs[len(subs)-2:]),
		},
	}
}
