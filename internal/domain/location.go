package domain

type Location struct {
	Lat float64 `json:"lat" validate:"lat"` // -90..90
	Lng float64 `json:"lng" validate:"lng"` // -180..180
}

func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
