// Package campus holds the static description of the campus: which rooms exist,
// what to show for each of them, where the camera should go, and which 3D assets
// make up the building.
package campus

import (
	"strconv"
	"strings"

	"campus-viewer/internal/geom"
)

// RoomID identifies one navigable room. The zero value is not a room.
type RoomID int

const (
	Room1 RoomID = iota + 1
	Room2
	Room3
	Room4
	Room5
	Room6
	Room7
	Room8
)

// roomNames are the scene node names of the rooms, indexed by RoomID.
var roomNames = [...]string{
	Room1: "Room 1",
	Room2: "Room 2",
	Room3: "Room 3",
	Room4: "Room 4",
	Room5: "Room 5",
	Room6: "Room 6",
	Room7: "Room 7",
	Room8: "Room 8",
}

// AllRooms returns every RoomID in ascending order.
func AllRooms() []RoomID {
	out := make([]RoomID, 0, len(roomNames)-1)
	for id := Room1; id <= Room8; id++ {
		out = append(out, id)
	}
	return out
}

// Valid reports whether id is one of the enumerated rooms.
func (id RoomID) Valid() bool {
	return id >= Room1 && id <= Room8
}

// String returns the room's node name, e.g. "Room 3".
func (id RoomID) String() string {
	if !id.Valid() {
		return "RoomID(" + strconv.Itoa(int(id)) + ")"
	}
	return roomNames[id]
}

// ParseRoomID maps a node name ("Room 3") back to its RoomID. Matching is exact.
func ParseRoomID(name string) (RoomID, bool) {
	for id := Room1; id <= Room8; id++ {
		if roomNames[id] == name {
			return id, true
		}
	}
	return 0, false
}

// ParseRoomNumber accepts "3" or "Room 3" (any case) and returns the RoomID.
// Used by terminal commands where spaces split arguments.
func ParseRoomNumber(s string) (RoomID, bool) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "room"); ok {
		s = strings.TrimSpace(rest)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	id := RoomID(n)
	return id, id.Valid()
}

// Info is the text shown when a room is focused.
type Info struct {
	Description string
	Directions  string
}

// Pose is a camera viewpoint: where the eye is and what it looks at.
type Pose struct {
	Eye    geom.Vec3
	Target geom.Vec3
}
