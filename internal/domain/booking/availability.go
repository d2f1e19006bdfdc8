package booking

// Occupancy maps a slot ("HH:MM") to the seats held by active bookings.
type Occupancy map[string]int

// SlotAvailability is the remaining capacity of one slot.
type SlotAvailability struct {
	Slot      Slot
	Booked    int
	Remaining int
}

// Fits reports whether partySize seats are still free in slot.
func Fits(capacity int, occ Occupancy, slot Slot, partySize int) bool {
	return capacity-occ[slot.String()] >= partySize
}

// AvailableTimes lists, in slot order, every service slot that can still
// seat partySize.
func AvailableTimes(capacity int, occ Occupancy, partySize int) []string {
	times := make([]string, 0, len(serviceSlots))
	for _, s := range serviceSlots {
		if Fits(capacity, occ, s, partySize) {
			times = append(times, s.String())
		}
	}
	return times
}

// DayAvailability reports every service slot with its remaining seats.
func DayAvailability(capacity int, occ Occupancy) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(serviceSlots))
	for _, s := range serviceSlots {
		booked := occ[s.String()]
		out = append(out, SlotAvailability{
			Slot:      s,
			Booked:    booked,
			Remaining: max(capacity-booked, 0),
		})
	}
	return out
}

// Total sums the seats held across all slots.
func (o Occupancy) Total() int {
	total := 0
	for _, n := range o {
		total += n
	}
	return total
}
