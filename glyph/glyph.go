// Package glyph lists the music font symbols a notation renderer draws.
//
// Names and codepoints follow the SMuFL standard. A Ref carries no behaviour
// beyond identity; renderers map it to an outline of the loaded music font.
package glyph

import "fmt"

// Ref identifies a music font symbol by its SMuFL codepoint.
type Ref int

// None is the sentinel for "no glyph".
const None Ref = -1

const (
	GClef                    Ref = 0xe050
	CClef                    Ref = 0xe05c
	FClef                    Ref = 0xe062
	UnpitchedPercussionClef1 Ref = 0xe069
	SixStringTabClef         Ref = 0xe06d
	FourStringTabClef        Ref = 0xe06e
)

const (
	TimeSig0         Ref = 0xe080
	TimeSig1         Ref = 0xe081
	TimeSig2         Ref = 0xe082
	TimeSig3         Ref = 0xe083
	TimeSig4         Ref = 0xe084
	TimeSig5         Ref = 0xe085
	TimeSig6         Ref = 0xe086
	TimeSig7         Ref = 0xe087
	TimeSig8         Ref = 0xe088
	TimeSig9         Ref = 0xe089
	TimeSigCommon    Ref = 0xe08a
	TimeSigCutCommon Ref = 0xe08b
)

const (
	NoteheadDoubleWholeSquare Ref = 0xe0a1
	NoteheadDoubleWhole       Ref = 0xe0a0
	NoteheadWhole             Ref = 0xe0a2
	NoteheadHalf              Ref = 0xe0a3
	NoteheadBlack             Ref = 0xe0a4
	NoteheadNull              Ref = 0xe0a5
	NoteheadXOrnate           Ref = 0xe0aa
	NoteheadTriangleUpWhole   Ref = 0xe0bb
	NoteheadTriangleUpHalf    Ref = 0xe0bc
	NoteheadTriangleUpBlack   Ref = 0xe0be
	NoteheadDiamondBlackWide  Ref = 0xe0dc
	NoteheadDiamondWhite      Ref = 0xe0dd
	NoteheadDiamondWhiteWide  Ref = 0xe0de
	NoteheadCircleX           Ref = 0xe0b3
	NoteheadXWhole            Ref = 0xe0a7
	NoteheadXHalf             Ref = 0xe0a8
	NoteheadXBlack            Ref = 0xe0a9
	NoteheadParenthesis       Ref = 0xe0ce
	NoteheadSlashedBlack2     Ref = 0xe0d0
	NoteheadCircleSlash       Ref = 0xe0f7
	NoteheadHeavyX            Ref = 0xe0f8
	NoteheadHeavyXHat         Ref = 0xe0f9
)

const (
	NoteQuarterUp Ref = 0xe1d5
	NoteEighthUp  Ref = 0xe1d7
)

const (
	Tremolo3 Ref = 0xe222
	Tremolo2 Ref = 0xe221
	Tremolo1 Ref = 0xe220
)

const (
	FlagEighthUp                   Ref = 0xe240
	FlagEighthDown                 Ref = 0xe241
	FlagSixteenthUp                Ref = 0xe242
	FlagSixteenthDown              Ref = 0xe243
	FlagThirtySecondUp             Ref = 0xe244
	FlagThirtySecondDown           Ref = 0xe245
	FlagSixtyFourthUp              Ref = 0xe246
	FlagSixtyFourthDown            Ref = 0xe247
	FlagOneHundredTwentyEighthUp   Ref = 0xe248
	FlagOneHundredTwentyEighthDown Ref = 0xe249
	FlagTwoHundredFiftySixthUp     Ref = 0xe24a
	FlagTwoHundredFiftySixthDown   Ref = 0xe24b
)

const (
	AccidentalFlat                      Ref = 0xe260
	AccidentalNatural                   Ref = 0xe261
	AccidentalSharp                     Ref = 0xe262
	AccidentalDoubleSharp               Ref = 0xe263
	AccidentalDoubleFlat                Ref = 0xe264
	AccidentalQuarterToneFlatArrowUp    Ref = 0xe270
	AccidentalQuarterToneSharpArrowUp   Ref = 0xe274
	AccidentalQuarterToneNaturalArrowUp Ref = 0xe272
)

const (
	ArticAccentAbove   Ref = 0xe4a0
	ArticStaccatoAbove Ref = 0xe4a2
	ArticMarcatoAbove  Ref = 0xe4ac
)

const (
	FermataAbove      Ref = 0xe4c0
	FermataShortAbove Ref = 0xe4c4
	FermataLongAbove  Ref = 0xe4c6
)

const (
	RestLonga                  Ref = 0xe4e1
	RestDoubleWhole            Ref = 0xe4e2
	RestWhole                  Ref = 0xe4e3
	RestHalf                   Ref = 0xe4e4
	RestQuarter                Ref = 0xe4e5
	RestEighth                 Ref = 0xe4e6
	RestSixteenth              Ref = 0xe4e7
	RestThirtySecond           Ref = 0xe4e8
	RestSixtyFourth            Ref = 0xe4e9
	RestOneHundredTwentyEighth Ref = 0xe4ea
	RestTwoHundredFiftySixth   Ref = 0xe4eb
)

const (
	Repeat1Bar  Ref = 0xe500
	Repeat2Bars Ref = 0xe501
)

const (
	Ottava           Ref = 0xe510
	OttavaAlta       Ref = 0xe511
	OttavaBassaVb    Ref = 0xe51c
	Quindicesima     Ref = 0xe514
	QuindicesimaAlta Ref = 0xe515
)

const (
	DynamicPPP   Ref = 0xe52a
	DynamicPP    Ref = 0xe52b
	DynamicPiano Ref = 0xe520
	DynamicMP    Ref = 0xe52c
	DynamicMF    Ref = 0xe52d
	DynamicForte Ref = 0xe522
	DynamicFF    Ref = 0xe52f
	DynamicFFF   Ref = 0xe530
)

const (
	OrnamentTrill Ref = 0xe566
)

const (
	StringsDownBow Ref = 0xe610
	StringsUpBow   Ref = 0xe612
)

const (
	PictEdgeOfCymbal Ref = 0xe729
)

const (
	GuitarGolpe Ref = 0xe842
)

const (
	FretboardX Ref = 0xe859
	FretboardO Ref = 0xe85a
)

const (
	WiggleTrill             Ref = 0xeaa4
	WiggleVibratoMediumFast Ref = 0xeade
)

const (
	OctaveBaselineM Ref = 0xec95
	OctaveBaselineB Ref = 0xec93
)

var names = map[Ref]string{
	None:                                "None",
	GClef:                               "gClef",
	CClef:                               "cClef",
	FClef:                               "fClef",
	UnpitchedPercussionClef1:            "unpitchedPercussionClef1",
	SixStringTabClef:                    "sixStringTabClef",
	FourStringTabClef:                   "fourStringTabClef",
	TimeSig0:                            "timeSig0",
	TimeSig1:                            "timeSig1",
	TimeSig2:                            "timeSig2",
	TimeSig3:                            "timeSig3",
	TimeSig4:                            "timeSig4",
	TimeSig5:                            "timeSig5",
	TimeSig6:                            "timeSig6",
	TimeSig7:                            "timeSig7",
	TimeSig8:                            "timeSig8",
	TimeSig9:                            "timeSig9",
	TimeSigCommon:                       "timeSigCommon",
	TimeSigCutCommon:                    "timeSigCutCommon",
	NoteheadDoubleWholeSquare:           "noteheadDoubleWholeSquare",
	NoteheadDoubleWhole:                 "noteheadDoubleWhole",
	NoteheadWhole:                       "noteheadWhole",
	NoteheadHalf:                        "noteheadHalf",
	NoteheadBlack:                       "noteheadBlack",
	NoteheadNull:                        "noteheadNull",
	NoteheadXOrnate:                     "noteheadXOrnate",
	NoteheadTriangleUpWhole:             "noteheadTriangleUpWhole",
	NoteheadTriangleUpHalf:              "noteheadTriangleUpHalf",
	NoteheadTriangleUpBlack:             "noteheadTriangleUpBlack",
	NoteheadDiamondBlackWide:            "noteheadDiamondBlackWide",
	NoteheadDiamondWhite:                "noteheadDiamondWhite",
	NoteheadDiamondWhiteWide:            "noteheadDiamondWhiteWide",
	NoteheadCircleX:                     "noteheadCircleX",
	NoteheadXWhole:                      "noteheadXWhole",
	NoteheadXHalf:                       "noteheadXHalf",
	NoteheadXBlack:                      "noteheadXBlack",
	NoteheadParenthesis:                 "noteheadParenthesis",
	NoteheadSlashedBlack2:               "noteheadSlashedBlack2",
	NoteheadCircleSlash:                 "noteheadCircleSlash",
	NoteheadHeavyX:                      "noteheadHeavyX",
	NoteheadHeavyXHat:                   "noteheadHeavyXHat",
	NoteQuarterUp:                       "noteQuarterUp",
	NoteEighthUp:                        "noteEighthUp",
	Tremolo3:                            "tremolo3",
	Tremolo2:                            "tremolo2",
	Tremolo1:                            "tremolo1",
	FlagEighthUp:                        "flagEighthUp",
	FlagEighthDown:                      "flagEighthDown",
	FlagSixteenthUp:                     "flagSixteenthUp",
	FlagSixteenthDown:                   "flagSixteenthDown",
	FlagThirtySecondUp:                  "flagThirtySecondUp",
	FlagThirtySecondDown:                "flagThirtySecondDown",
	FlagSixtyFourthUp:                   "flagSixtyFourthUp",
	FlagSixtyFourthDown:                 "flagSixtyFourthDown",
	FlagOneHundredTwentyEighthUp:        "flagOneHundredTwentyEighthUp",
	FlagOneHundredTwentyEighthDown:      "flagOneHundredTwentyEighthDown",
	FlagTwoHundredFiftySixthUp:          "flagTwoHundredFiftySixthUp",
	FlagTwoHundredFiftySixthDown:        "flagTwoHundredFiftySixthDown",
	AccidentalFlat:                      "accidentalFlat",
	AccidentalNatural:                   "accidentalNatural",
	AccidentalSharp:                     "accidentalSharp",
	AccidentalDoubleSharp:               "accidentalDoubleSharp",
	AccidentalDoubleFlat:                "accidentalDoubleFlat",
	AccidentalQuarterToneFlatArrowUp:    "accidentalQuarterToneFlatArrowUp",
	AccidentalQuarterToneSharpArrowUp:   "accidentalQuarterToneSharpArrowUp",
	AccidentalQuarterToneNaturalArrowUp: "accidentalQuarterToneNaturalArrowUp",
	ArticAccentAbove:                    "articAccentAbove",
	ArticStaccatoAbove:                  "articStaccatoAbove",
	ArticMarcatoAbove:                   "articMarcatoAbove",
	FermataAbove:                        "fermataAbove",
	FermataShortAbove:                   "fermataShortAbove",
	FermataLongAbove:                    "fermataLongAbove",
	RestLonga:                           "restLonga",
	RestDoubleWhole:                     "restDoubleWhole",
	RestWhole:                           "restWhole",
	RestHalf:                            "restHalf",
	RestQuarter:                         "restQuarter",
	RestEighth:                          "restEighth",
	RestSixteenth:                       "restSixteenth",
	RestThirtySecond:                    "restThirtySecond",
	RestSixtyFourth:                     "restSixtyFourth",
	RestOneHundredTwentyEighth:          "restOneHundredTwentyEighth",
	RestTwoHundredFiftySixth:            "restTwoHundredFiftySixth",
	Repeat1Bar:                          "repeat1Bar",
	Repeat2Bars:                         "repeat2Bars",
	Ottava:                              "ottava",
	OttavaAlta:                          "ottavaAlta",
	OttavaBassaVb:                       "ottavaBassaVb",
	Quindicesima:                        "quindicesima",
	QuindicesimaAlta:                    "quindicesimaAlta",
	DynamicPPP:                          "dynamicPPP",
	DynamicPP:                           "dynamicPP",
	DynamicPiano:                        "dynamicPiano",
	DynamicMP:                           "dynamicMP",
	DynamicMF:                           "dynamicMF",
	DynamicForte:                        "dynamicForte",
	DynamicFF:                           "dynamicFF",
	DynamicFFF:                          "dynamicFFF",
	OrnamentTrill:                       "ornamentTrill",
	StringsDownBow:                      "stringsDownBow",
	StringsUpBow:                        "stringsUpBow",
	PictEdgeOfCymbal:                    "pictEdgeOfCymbal",
	GuitarGolpe:                         "guitarGolpe",
	FretboardX:                          "fretboardX",
	FretboardO:                          "fretboardO",
	WiggleTrill:                         "wiggleTrill",
	WiggleVibratoMediumFast:             "wiggleVibratoMediumFast",
	OctaveBaselineM:                     "octaveBaselineM",
	OctaveBaselineB:                     "octaveBaselineB",
}

// String returns the SMuFL glyph name of r, or its hex codepoint if r is not
// part of the catalog.
func (r Ref) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return fmt.Sprintf("U+%04X", int(r))
}

// Known reports whether r is part of the symbol catalog.
func (r Ref) Known() bool {
	_, ok := names[r]
	return ok
}
