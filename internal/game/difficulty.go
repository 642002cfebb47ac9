package game

// Stage change triggers, for logging.
const (
	triggerScore = "score"
	triggerTime  = "time"
	triggerBoss  = "boss"
)

// checkDifficulty runs once per frame. A pending boss takes priority over
// score-based stage changes, which stop applying once the next threshold
// reaches the boss score.
func (g *Game) checkDifficulty() {
	s := g.state
	if s.Score >= BossSpawnScore && s.Boss == nil {
		g.spawnBoss()
		return
	}
	if s.Boss != nil {
		return
	}

	next := s.StageIndex + 1
	if next >= StageCount {
		return
	}
	threshold := stages[next].ScoreThreshold
	if threshold < BossSpawnScore && s.Score >= threshold {
		g.advanceStage(triggerScore)
	}
}

// advanceStage moves to the next stage, never past the last, and
// reconfigures the timers for its cadence.
func (g *Game) advanceStage(trigger string) {
	s := g.state
	if s.StageIndex < StageCount-1 {
		s.StageIndex++
	}
	g.configureTimers()
	g.log.Info("stage advanced", "stage", s.StageIndex+1, "trigger", trigger, "score", s.Score)
}

// configureTimers cancels the enemy spawn, enemy shoot and stage timers and,
// unless a boss is active or the game is over, recreates them for the
// current stage. The stage timer only runs while a later stage exists.
func (g *Game) configureTimers() {
	s := g.state
	g.spawnTask.Stop()
	g.shootTask.Stop()
	g.stageTask.Stop()

	if s.Boss != nil || s.Over {
		return
	}

	st := s.Stage()
	g.spawnTask = g.sched.Every("enemy-spawn", st.SpawnInterval, g.spawnEnemy)
	g.shootTask = g.sched.Every("enemy-shoot", st.ShootInterval, g.enemyShoot)
	if s.StageIndex < StageCount-1 {
		g.stageTask = g.sched.Every("stage-advance", StageDuration, func() {
			g.advanceStage(triggerTime)
		})
	}
}
