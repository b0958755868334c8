package client

import "strings"

// FilterRooms narrows listings to those whose name or description
// contains the keyword, case-insensitively. A blank keyword keeps
// everything. Matching runs client-side: the listing endpoints have no
// keyword parameter, so callers fetch all rooms and filter locally.
func FilterRooms(rooms []Room, keyword string) []Room {
	term := strings.ToLower(strings.TrimSpace(keyword))
	if term == "" {
		return rooms
	}

	var matched []Room
	for _, room := range rooms {
		if strings.Contains(strings.ToLower(room.Name), term) ||
			strings.Contains(strings.ToLower(room.Description), term) {
			matched = append(matched, room)
		}
	}
	return matched
}
