package models

import "math"

const earthRadiusMeters = 6371000.0

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location - точка на карте с адресом
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FullAddress string  `json:"fullAddress,omitempty"`
	Suburb      string  `json:"suburb,omitempty"`
}

// BoundingBox - видимая область карты, для которой запрашивается синхронизация
type BoundingBox struct {
	NorthWest Coordinate `json:"northWest"`
	SouthEast Coordinate `json:"southEast"`
}

// DistanceMeters возвращает расстояние между точками по формуле гаверсинусов
func (c Coordinate) DistanceMeters(other Coordinate) float64 {
	lat1 := c.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (other.Longitude - c.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Diagonal возвращает длину диагонали области
func (b BoundingBox) Diagonal() float64 {
	return b.NorthWest.DistanceMeters(b.SouthEast)
}

// RequiresSyncFrom сообщает, сдвинулась или изменилась ли область относительно
// предыдущей достаточно сильно (5% и более), чтобы запрашивать данные заново.
func (b BoundingBox) RequiresSyncFrom(prev *BoundingBox) bool {
	if prev == nil {
		return true
	}
	prevSize := prev.Diagonal()
	newSize := b.Diagonal()
	if prevSize == 0 || newSize == 0 {
		return true
	}
	movedFactor := b.NorthWest.DistanceMeters(prev.NorthWest) / prevSize
	sizeFactor := math.Abs(1 - prevSize/newSize)
	return movedFactor >= 0.05 || sizeFactor >= 0.05
}
