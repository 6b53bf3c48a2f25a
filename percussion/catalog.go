package percussion

import (
	"github.com/jsphweid/percmap/glyph"
	"github.com/jsphweid/percmap/model"
	"golang.org/x/exp/slices"
)

// catalog maps an articulation key to its notation. The table was recorded
// from a drumkit track holding one note per MIDI input number, so a key is
// the input number while OutputPitch is what the articulation sounds as.
// Several keys share an OutputPitch (e.g. 42, 92 and 46 are all hi-hat).
//
// Do not edit by hand.
var catalog = map[int]model.Articulation{
	38: model.NewArticulation(3, 38, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	37: model.NewArticulation(3, 37, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	91: model.NewArticulation(3, 38, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite),
	42: model.NewArticulation(-1, 42, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	92: model.NewArticulation(-1, 46, glyph.NoteheadCircleSlash, glyph.NoteheadCircleSlash, glyph.NoteheadCircleSlash),
	46: model.NewArticulation(-1, 46, glyph.NoteheadCircleX, glyph.NoteheadCircleX, glyph.NoteheadCircleX),
	44: model.NewArticulation(9, 44, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	35: model.NewArticulation(8, 35, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	36: model.NewArticulation(7, 36, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	50: model.NewArticulation(1, 50, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	48: model.NewArticulation(2, 48, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	47: model.NewArticulation(4, 47, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	45: model.NewArticulation(5, 45, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	43: model.NewArticulation(6, 43, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	93: model.NewArticulation(0, 51, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.PictEdgeOfCymbal, model.PlacementBottom),
	51: model.NewArticulation(0, 51, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	53: model.NewArticulation(0, 53, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite),
	94: model.NewArticulation(0, 51, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.ArticStaccatoAbove, model.PlacementTop),
	55: model.NewArticulation(-2, 55, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	95: model.NewArticulation(-2, 55, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.ArticStaccatoAbove, model.PlacementBottom),
	52: model.NewArticulation(-3, 52, glyph.NoteheadHeavyXHat, glyph.NoteheadHeavyXHat, glyph.NoteheadHeavyXHat),
	96: model.NewArticulation(-3, 52, glyph.NoteheadHeavyXHat, glyph.NoteheadHeavyXHat, glyph.NoteheadHeavyXHat),
	49: model.NewArticulation(-2, 49, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX),
	97: model.NewArticulation(-2, 49, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX).
		WithTechnique(glyph.ArticStaccatoAbove, model.PlacementBottom),
	57: model.NewArticulation(-1, 57, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX),
	98: model.NewArticulation(-1, 57, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX, glyph.NoteheadHeavyX).
		WithTechnique(glyph.ArticStaccatoAbove, model.PlacementBottom),
	99:  model.NewArticulation(1, 56, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpHalf, glyph.NoteheadTriangleUpWhole),
	100: model.NewArticulation(1, 56, glyph.NoteheadXBlack, glyph.NoteheadXHalf, glyph.NoteheadXWhole),
	56:  model.NewArticulation(0, 56, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpHalf, glyph.NoteheadTriangleUpWhole),
	101: model.NewArticulation(0, 56, glyph.NoteheadXBlack, glyph.NoteheadXHalf, glyph.NoteheadXWhole),
	102: model.NewArticulation(-1, 56, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpHalf, glyph.NoteheadTriangleUpWhole),
	103: model.NewArticulation(-1, 56, glyph.NoteheadXBlack, glyph.NoteheadXHalf, glyph.NoteheadXWhole),
	77:  model.NewArticulation(-9, 77, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack),
	76:  model.NewArticulation(-10, 76, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack),
	60:  model.NewArticulation(-4, 60, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	104: model.NewArticulation(-5, 60, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.NoteheadParenthesis, model.PlacementMiddle),
	105: model.NewArticulation(-6, 60, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	61:  model.NewArticulation(-7, 61, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	106: model.NewArticulation(-8, 61, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.NoteheadParenthesis, model.PlacementMiddle),
	107: model.NewArticulation(-16, 61, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	66:  model.NewArticulation(10, 66, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	65:  model.NewArticulation(9, 65, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	68:  model.NewArticulation(12, 68, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	67:  model.NewArticulation(11, 67, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	64:  model.NewArticulation(17, 64, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	108: model.NewArticulation(16, 64, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	109: model.NewArticulation(15, 64, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.NoteheadParenthesis, model.PlacementMiddle),
	63:  model.NewArticulation(14, 63, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	110: model.NewArticulation(13, 63, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	62: model.NewArticulation(19, 62, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.NoteheadParenthesis, model.PlacementMiddle),
	72: model.NewArticulation(-11, 72, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	71: model.NewArticulation(-17, 71, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	73: model.NewArticulation(38, 73, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	74: model.NewArticulation(37, 74, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	86: model.NewArticulation(36, 86, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	87: model.NewArticulation(35, 87, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.NoteheadParenthesis, model.PlacementMiddle),
	54: model.NewArticulation(3, 54, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack),
	111: model.NewArticulation(2, 54, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack).
		WithTechnique(glyph.StringsUpBow, model.PlacementBottom),
	112: model.NewArticulation(1, 54, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack, glyph.NoteheadTriangleUpBlack).
		WithTechnique(glyph.StringsDownBow, model.PlacementBottom),
	113: model.NewArticulation(-7, 54, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	79:  model.NewArticulation(30, 79, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	78:  model.NewArticulation(29, 78, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	58:  model.NewArticulation(28, 58, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	81:  model.NewArticulation(27, 81, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	80: model.NewArticulation(26, 80, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.NoteheadParenthesis, model.PlacementMiddle),
	114: model.NewArticulation(25, 43, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	115: model.NewArticulation(18, 49, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	116: model.NewArticulation(24, 49, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	69:  model.NewArticulation(23, 69, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	117: model.NewArticulation(22, 69, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.StringsUpBow, model.PlacementBottom),
	85: model.NewArticulation(21, 85, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	75: model.NewArticulation(20, 75, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	70: model.NewArticulation(-12, 70, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	118: model.NewArticulation(-13, 70, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.StringsUpBow, model.PlacementBottom),
	119: model.NewArticulation(-14, 70, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	120: model.NewArticulation(-15, 70, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.StringsUpBow, model.PlacementBottom),
	82: model.NewArticulation(-23, 54, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	122: model.NewArticulation(-24, 54, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.StringsUpBow, model.PlacementBottom),
	84: model.NewArticulation(-18, 53, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	123: model.NewArticulation(-19, 53, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole).
		WithTechnique(glyph.StringsUpBow, model.PlacementBottom),
	83: model.NewArticulation(-20, 53, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	124: model.NewArticulation(-21, 62, glyph.NoteheadNull, glyph.NoteheadNull, glyph.NoteheadNull).
		WithTechnique(glyph.GuitarGolpe, model.PlacementTop),
	125: model.NewArticulation(-22, 62, glyph.NoteheadNull, glyph.NoteheadNull, glyph.NoteheadNull).
		WithTechnique(glyph.GuitarGolpe, model.PlacementBottom),
	39: model.NewArticulation(3, 39, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	40: model.NewArticulation(3, 40, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	31: model.NewArticulation(3, 40, glyph.NoteheadSlashedBlack2, glyph.NoteheadSlashedBlack2, glyph.NoteheadSlashedBlack2),
	41: model.NewArticulation(5, 41, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
	59: model.NewArticulation(2, 59, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.PictEdgeOfCymbal, model.PlacementBottom),
	126: model.NewArticulation(2, 59, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	127: model.NewArticulation(2, 59, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite),
	29: model.NewArticulation(2, 59, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
		WithTechnique(glyph.ArticStaccatoAbove, model.PlacementTop),
	30: model.NewArticulation(-3, 49, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	33: model.NewArticulation(3, 37, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	34: model.NewArticulation(3, 38, glyph.NoteheadBlack, glyph.NoteheadBlack, glyph.NoteheadBlack),
}

var catalogKeys = sortedCatalogKeys()

func sortedCatalogKeys() []int {
	keys := make([]int, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns the articulation filed under key. A missing key is not an
// error, the second return value is false.
func Lookup(key int) (model.Articulation, bool) {
	a, ok := catalog[key]
	return a, ok
}

// Keys returns all catalog keys in ascending order.
func Keys() []int {
	return slices.Clone(catalogKeys)
}

// CatalogSize is the number of articulations in the catalog.
func CatalogSize() int {
	return len(catalog)
}
