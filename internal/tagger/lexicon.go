package tagger

import (
	"strings"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// entry is the lexical reading of a single normalised word form.
type entry struct {
	lemma string
	tags  []string
}

func words(list string) []string {
	return strings.Fields(list)
}

var (
	pronouns = words(`i me my mine myself you your yours yourself yourselves he him his
		himself she her hers herself it its itself we us our ours ourselves they them
		their theirs themselves who whom whose what which someone somebody something
		anyone anybody anything everyone everybody everything nobody nothing one`)

	determiners = words(`a an the this that these those some any no every each either
		neither all both many much few little several enough another other such my your
		his her its our their what which whose`)

	prepositions = words(`about above across after against along among around at before
		behind below beneath beside between beyond by down during except for from in
		inside into like near of off on onto out outside over past since through
		throughout till toward towards under underneath until up upon with within without`)

	conjunctions = words(`and but or nor so yet for because although though while whereas
		if unless until since when whenever where wherever whether that than as`)

	modals = words(`can could may might must shall should will would ought`)

	interjections = words(`oh ah hey hi hello bye goodbye wow oops ouch yes no ok okay
		please thanks alas hmm hurray`)

	copulaForms = words(`be am is are was were been being`)
	doForms     = words(`do does did done doing`)
	haveForms   = words(`have has had having`)

	cardinals = words(`zero one two three four five six seven eight nine ten eleven
		twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty
		thirty forty fifty sixty seventy eighty ninety hundred thousand million billion`)

	ordinals = words(`first second third fourth fifth sixth seventh eighth ninth tenth
		eleventh twelfth thirteenth fourteenth fifteenth sixteenth seventeenth
		eighteenth nineteenth twentieth thirtieth fortieth fiftieth hundredth
		thousandth millionth last`)

	adverbs = words(`not never always often sometimes usually rarely seldom already also
		just still even ever again soon now then here there today tomorrow yesterday
		tonight very too quite rather almost away back home together well fast hard
		maybe perhaps however instead only once twice later early`)

	adjectives = words(`good bad big small large little long short old new young high low
		great right wrong early late easy hard happy sad hot cold warm cool nice fine
		beautiful ugly rich poor strong weak clean dirty full empty busy free cheap
		expensive important different same other own sure ready able
		real true false open close dark light heavy kind quick slow safe`)

	// verbs is the stock of base forms used for lemmatising inflections and
	// for deciding whether "to" introduces an infinitive.
	verbs = words(`be have do say go get make know think take see come want look use find
		give tell work call try ask need feel become leave put mean keep let begin seem
		help talk turn start show hear play run move like live believe hold bring happen
		write provide sit stand lose pay meet include continue set learn change lead
		understand watch follow stop create speak read allow add spend grow open walk win
		offer remember love consider appear buy wait serve die send expect build stay
		fall cut reach kill remain suggest raise pass sell require report decide pull
		eat drink sleep swim fly drive ride sing dance cook wash clean close study teach
		travel visit carry catch choose forget hope arrive answer wear draw break throw
		shut wake wish worry agree cry laugh smile listen miss enjoy finish prefer stay
		explain describe prepare save share fix check plan return enter invite`)

	// nounVerbs are base forms that are read as a noun as well as a verb.
	nounVerbs = words(`work call look use need help talk turn start show play run move
		hold change lead watch stop plan report answer walk love offer return visit
		wish smile laugh cry dance cook drink study travel fly fall cut check fix
		share drive ride swim sleep catch break wait stay`)

	// nounAdverbs are adverbs that also stand alone as nouns ("my home",
	// "today's paper").
	nounAdverbs = words(`home today tomorrow yesterday tonight`)
)

// irregularVerbs maps inflected forms of irregular verbs to their base.
var irregularVerbs = map[string]string{
	"went": "go", "gone": "go", "goes": "go",
	"said": "say", "got": "get", "gotten": "get", "made": "make",
	"knew": "know", "known": "know", "thought": "think", "took": "take", "taken": "take",
	"saw": "see", "seen": "see", "came": "come", "gave": "give", "given": "give",
	"told": "tell", "felt": "feel", "became": "become", "left": "leave", "meant": "mean",
	"kept": "keep", "began": "begin", "begun": "begin", "held": "hold", "brought": "bring",
	"wrote": "write", "written": "write", "sat": "sit", "stood": "stand", "lost": "lose",
	"paid": "pay", "met": "meet", "led": "lead", "understood": "understand",
	"spoke": "speak", "spoken": "speak", "spent": "spend", "grew": "grow", "grown": "grow",
	"won": "win", "bought": "buy", "sent": "send", "built": "build", "fell": "fall",
	"fallen": "fall", "sold": "sell", "ate": "eat", "eaten": "eat", "drank": "drink",
	"drunk": "drink", "slept": "sleep", "swam": "swim", "swum": "swim", "flew": "fly",
	"flown": "fly", "drove": "drive", "driven": "drive", "rode": "ride", "ridden": "ride",
	"sang": "sing", "sung": "sing", "taught": "teach", "caught": "catch", "chose": "choose",
	"chosen": "choose", "forgot": "forget", "forgotten": "forget", "wore": "wear",
	"worn": "wear", "drew": "draw", "drawn": "draw", "broke": "break", "broken": "break",
	"threw": "throw", "thrown": "throw", "woke": "wake", "woken": "wake", "ran": "run",
	"heard": "hear", "found": "find", "read": "read", "dies": "die",
	"died": "die", "dying": "die", "lying": "lie", "lay": "lie", "cried": "cry",
	"tried": "try", "studied": "study", "worried": "worry", "carried": "carry",
	"flies": "fly",
}

// irregularNouns maps irregular plurals to their singular.
var irregularNouns = map[string]string{
	"children": "child", "men": "man", "women": "woman", "feet": "foot",
	"teeth": "tooth", "mice": "mouse", "geese": "goose", "people": "person",
	"lives": "life", "wives": "wife", "knives": "knife", "leaves": "leaf",
	"halves": "half", "shelves": "shelf", "wolves": "wolf",
}

// irregularAdjectives maps irregular comparatives and superlatives.
var irregularAdjectives = map[string]string{
	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
	"more": "many", "most": "many", "less": "little", "least": "little",
}

var contractionStems = map[string]string{
	"can't": "can", "won't": "will", "shan't": "shall", "ain't": "be",
}

var adjectiveSuffixes = []string{"ful", "less", "ous", "ive", "able", "ible", "ical", "ish", "ic", "al", "ent", "ant"}

// lexicon holds the closed-class and base-form readings.
type lexicon struct {
	closed map[string]entry
	verbs  map[string]bool
	nouns  map[string]bool
}

func newLexicon() *lexicon {
	lx := &lexicon{
		closed: make(map[string]entry),
		verbs:  make(map[string]bool, len(verbs)),
		nouns:  make(map[string]bool, len(nounVerbs)+len(nounAdverbs)),
	}

	add := func(forms []string, lemma string, tags ...string) {
		for _, f := range forms {
			e := lx.closed[f]
			if e.lemma == "" {
				e.lemma = f
				if lemma != "" {
					e.lemma = lemma
				}
			}
			e.tags = append(e.tags, tags...)
			lx.closed[f] = e
		}
	}

	add(pronouns, "", domain.TagPronoun)
	add(determiners, "", domain.TagDeterminer)
	add(prepositions, "", domain.TagPreposition)
	add(conjunctions, "", domain.TagConjunction)
	add(modals, "", domain.TagModal, domain.TagAuxiliary)
	add(interjections, "", domain.TagInterjection)
	add(copulaForms, "be", domain.TagCopula, domain.TagVerb)
	add(doForms, "do", domain.TagVerb, domain.TagAuxiliary)
	add(haveForms, "have", domain.TagVerb, domain.TagAuxiliary)
	add(cardinals, "", domain.TagValue, domain.TagCardinal)
	add(ordinals, "", domain.TagValue, domain.TagOrdinal)
	add(adverbs, "", domain.TagAdverb)
	add(adjectives, "", domain.TagAdjective)

	for _, v := range verbs {
		lx.verbs[v] = true
	}
	for _, n := range nounVerbs {
		lx.nouns[n] = true
	}
	for _, n := range nounAdverbs {
		lx.nouns[n] = true
	}

	return lx
}

func (lx *lexicon) isVerb(base string) bool {
	return lx.verbs[base]
}
