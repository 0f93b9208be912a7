package models

// InputRow is one business listing after header normalization.
// Every field is a plain string; absent cells become "".
type InputRow struct {
	BusinessName string
	Address      string
	City         string
}

// Platform is one of the fixed review/booking services a listing is checked against.
type Platform string

const (
	PlatformYelp      Platform = "Yelp"
	PlatformInstagram Platform = "Instagram"
	PlatformVagaro    Platform = "Vagaro"
	PlatformStyleSeat Platform = "StyleSeat"
)

// Platforms lists every tracked platform in match priority order.
var Platforms = []Platform{PlatformYelp, PlatformInstagram, PlatformVagaro, PlatformStyleSeat}

// Marker returns the domain substring that identifies the platform in a URL.
func (p Platform) Marker() string {
	switch p {
	case PlatformYelp:
		return "yelp.com"
	case PlatformInstagram:
		return "instagram.com"
	case PlatformVagaro:
		return "vagaro.com"
	case PlatformStyleSeat:
		return "styleseat.com"
	}
	return ""
}
