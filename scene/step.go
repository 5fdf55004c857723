package scene

// Step advances every planet and asteroid by one frame of its angular speed
// Speeds are per frame, not per second: animation pace follows the frame rate
func (s *Scene) Step() {
	for i := range s.Planets {
		s.Planets[i].advance()
	}
	for i := range s.Asteroids {
		group := s.Asteroids[i]
		for j := range group {
			group[j].advance()
		}
	}
	s.frame++
}
