package campus

// Registry maps rooms to their text and to their current camera pose.
// Info is fixed at construction; poses start from the authored values and can be
// overwritten for the lifetime of the process. Not safe for concurrent use: the
// render loop owns it.
type Registry struct {
	info  map[RoomID]Info
	poses map[RoomID]Pose
}

// NewRegistry copies info and poses into a new Registry. Poses for rooms without info are dropped.
func NewRegistry(info map[RoomID]Info, poses map[RoomID]Pose) *Registry {
	r := &Registry{
		info:  make(map[RoomID]Info, len(info)),
		poses: make(map[RoomID]Pose, len(poses)),
	}
	for id, in := range info {
		r.info[id] = in
	}
	for id, p := range poses {
		if _, ok := r.info[id]; ok {
			r.poses[id] = p
		}
	}
	return r
}

// Lookup resolves a scene node name to a registered room.
func (r *Registry) Lookup(name string) (RoomID, bool) {
	id, ok := ParseRoomID(name)
	if !ok {
		return 0, false
	}
	if _, known := r.info[id]; !known {
		return 0, false
	}
	return id, true
}

// Info returns the text for id.
func (r *Registry) Info(id RoomID) (Info, bool) {
	in, ok := r.info[id]
	return in, ok
}

// Pose returns the current pose for id. Rooms without a pose fall back to a
// framing computed from their geometry (see viewer.DefaultPose).
func (r *Registry) Pose(id RoomID) (Pose, bool) {
	p, ok := r.poses[id]
	return p, ok
}

// SetPose overwrites the pose for id. Unknown rooms are ignored and reported as false.
func (r *Registry) SetPose(id RoomID, p Pose) bool {
	if _, ok := r.info[id]; !ok {
		return false
	}
	r.poses[id] = p
	return true
}

// Rooms returns the registered rooms in ascending order.
func (r *Registry) Rooms() []RoomID {
	out := make([]RoomID, 0, len(r.info))
	for _, id := range AllRooms() {
		if _, ok := r.info[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
