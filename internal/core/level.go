package core

// Level is a finished level description produced by a level builder.
type Level struct {
	Number     int      `json:"number"`
	Goal       string   `json:"goal"`
	Background string   `json:"background"`
	EnemyWave  []string `json:"enemy_wave"`
}

// WaveSize returns the number of enemies in the level's wave.
func (l Level) WaveSize() int {
	return len(l.EnemyWave)
}
