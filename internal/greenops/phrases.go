package greenops

import "golang.org/x/text/language"

// phrases are the words of one locale around formatted numbers.
type phrases struct {
	labels  map[EquivalencyType]string
	display string // two %s verbs: miles driven, smartphones charged
	million string
	billion string
}

//nolint:gochecknoglobals // Static translation tables.
var (
	englishPhrases = phrases{
		labels: map[EquivalencyType]string{
			EquivalencyMilesDriven:        "miles driven",
			EquivalencySmartphonesCharged: "smartphones charged",
			EquivalencyTreeSeedlings:      "tree seedlings grown for 10 years",
			EquivalencyHomeDays:           "days of home electricity use",
		},
		display: "Equivalent to driving ~%s miles or charging ~%s smartphones",
		million: "million",
		billion: "billion",
	}

	russianPhrases = phrases{
		labels: map[EquivalencyType]string{
			EquivalencyMilesDriven:        "миль на легковом автомобиле",
			EquivalencySmartphonesCharged: "зарядок смартфона",
			EquivalencyTreeSeedlings:      "саженцев, выращенных за 10 лет",
			EquivalencyHomeDays:           "дней электропотребления дома",
		},
		display: "Эквивалентно ~%s милям на автомобиле или ~%s зарядкам смартфона",
		million: "млн",
		billion: "млрд",
	}
)

func phrasesFor(tag language.Tag) phrases {
	if base, _ := tag.Base(); base.String() == "ru" {
		return russianPhrases
	}
	return englishPhrases
}
