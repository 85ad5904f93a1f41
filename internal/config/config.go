package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "HARVEST_CONFIG"

const DefaultPath = "config/sim.toml"

type Config struct {
	World     WorldConfig     `toml:"world"`
	Ship      ShipConfig      `toml:"ship"`
	Game      GameConfig      `toml:"game"`
	Boss      BossConfig      `toml:"boss"`
	Harvester HarvesterConfig `toml:"harvester"`
	Turret    TurretConfig    `toml:"turret"`
	AI        AIConfig        `toml:"ai"`
	Wave      WaveConfig      `toml:"wave"`
	Pools     PoolsConfig     `toml:"pools"`
	Data      DataConfig      `toml:"data"`
	Logging   LoggingConfig   `toml:"logging"`
	Demo      DemoConfig      `toml:"demo"`
}

type WorldConfig struct {
	Width    float64       `toml:"width"`
	Height   float64       `toml:"height"`
	EdgeSize float64       `toml:"edge_size"` // bullet grace margin beyond the field
	TickRate time.Duration `toml:"tick_rate"`
	Seed     int64         `toml:"seed"` // 0 = seed from wall clock
}

// ShipConfig holds player ship handling. Angles are degrees, speeds pixels/s.
type ShipConfig struct {
	TurnRate         float64 `toml:"turn_rate"`
	AngularDrag      float64 `toml:"angular_drag"`
	Acceleration     float64 `toml:"acceleration"`
	MaxVelocity      float64 `toml:"max_velocity"`
	Drag             float64 `toml:"drag"`
	Radius           float64 `toml:"radius"`
	FireRateMs       float64 `toml:"fire_rate_ms"`
	DeadTimeMs       float64 `toml:"dead_time_ms"`
	JoinSpawnDelayMs float64 `toml:"join_spawn_delay_ms"`
	BulletSpeed      float64 `toml:"bullet_speed"`
	BulletLifetimeMs float64 `toml:"bullet_lifetime_ms"`
}

type GameConfig struct {
	StartingEnergy           int     `toml:"starting_energy"`
	StartingShips            int     `toml:"starting_ships"`
	PointsForBonus           int     `toml:"points_for_bonus"`
	RejoinCooldownMs         float64 `toml:"rejoin_cooldown_ms"`
	MineralSpawnMin          int     `toml:"mineral_spawn_min"`
	MineralSpawnMax          int     `toml:"mineral_spawn_max"`
	AlienDropCount           int     `toml:"alien_drop_count"`
	AlienSpawnMinMs          float64 `toml:"alien_spawn_min_ms"`
	AlienSpawnMaxMs          float64 `toml:"alien_spawn_max_ms"`
	BaseRadius               float64 `toml:"base_radius"`
	BaseHitByBulletPenalty   int     `toml:"base_hit_by_bullet_energy_penalty"`
	BaseHitByAsteroidPenalty int     `toml:"base_hit_by_asteroid_energy_penalty"`
	BaseHitByAlienPenalty    int     `toml:"base_hit_by_alien_energy_penalty"`
	BaseHitByPlayerPenalty   int     `toml:"base_hit_by_player_energy_penalty"`
	AsteroidRadius           float64 `toml:"asteroid_radius"`
	MineralRadius            float64 `toml:"mineral_radius"`
	AlienRadius              float64 `toml:"alien_radius"`
	BulletRadius             float64 `toml:"bullet_radius"`
}

type BossConfig struct {
	Health              int     `toml:"health"`
	HealthPerAppearance int     `toml:"health_per_appearance"`
	DescendSpeed        float64 `toml:"descend_speed"`
	Radius              float64 `toml:"radius"`
	ShootMinMs          float64 `toml:"shoot_min_ms"`
	ShootMaxMs          float64 `toml:"shoot_max_ms"`
	TargetChance        float64 `toml:"target_chance"`
	RangeMultiplier     float64 `toml:"range_multiplier"`
	MineralSpawnMin     int     `toml:"mineral_spawn_min"`
	MineralSpawnMax     int     `toml:"mineral_spawn_max"`
	BaseRetreatSpeed    float64 `toml:"base_retreat_speed"` // pixels/s, linear step
	ReassembleTimeoutMs float64 `toml:"reassemble_timeout_ms"`
}

type HarvesterConfig struct {
	Acceleration     float64 `toml:"acceleration"`
	MaxVelocity      float64 `toml:"max_velocity"`
	Drag             float64 `toml:"drag"`
	AngularDrag      float64 `toml:"angular_drag"`
	Radius           float64 `toml:"radius"`
	DeadTimeMs       float64 `toml:"dead_time_ms"`
	LaunchDelayMs    float64 `toml:"launch_delay_ms"` // first launch after the grant
	BaseSpawnAdjustY float64 `toml:"base_spawn_adjust_y"`
}

type TurretConfig struct {
	AngleRangeDeg    float64 `toml:"angle_range_deg"` // arc half-width
	FireRateMs       float64 `toml:"fire_rate_ms"`
	BulletLifetimeMs float64 `toml:"bullet_lifetime_ms"`
}

// AIConfig tunes the greedy steering shared by AI players and harvesters.
// Turn rates are radians per second.
type AIConfig struct {
	AvoidRange    float64 `toml:"avoid_range"`
	CloseRange    float64 `toml:"close_range"`
	SpeedRatio    float64 `toml:"speed_ratio"`
	TurnRate      float64 `toml:"turn_rate"`
	CloseTurnRate float64 `toml:"close_turn_rate"`
	AvoidTurnRate float64 `toml:"avoid_turn_rate"`
	FireConeDeg   float64 `toml:"fire_cone_deg"`
	FireRange     float64 `toml:"fire_range"`
}

type WaveConfig struct {
	BossEvery          int     `toml:"boss_every"`
	IntermissionMs     float64 `toml:"intermission_ms"`
	AsteroidsBase      int     `toml:"asteroids_base"`
	AsteroidsPerWave   int     `toml:"asteroids_per_wave"`
	AliensBase         int     `toml:"aliens_base"`
	AliensPerWave      int     `toml:"aliens_per_wave"`
	AsteroidIntervalMs float64 `toml:"asteroid_interval_ms"`
	MaxActiveMinerals  int     `toml:"max_active_minerals"`
}

type PoolsConfig struct {
	BulletsPerPlayer int `toml:"bullets_per_player"`
	AIBullets        int `toml:"ai_bullets"`
	Asteroids        int `toml:"asteroids"`
	Minerals         int `toml:"minerals"`
	Aliens           int `toml:"aliens"`
	Harvesters       int `toml:"harvesters"`
	Turrets          int `toml:"turrets"`
}

type DataConfig struct {
	YAMLDir    string `toml:"yaml_dir"`
	ScriptsDir string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DemoConfig drives the headless runner.
type DemoConfig struct {
	AIPlayers      int           `toml:"ai_players"`
	Duration       time.Duration `toml:"duration"` // 0 = run until signalled
	StatusInterval time.Duration `toml:"status_interval"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the config path from HARVEST_CONFIG, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func (c *Config) validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Game.PointsForBonus <= 0:
		return fmt.Errorf("game.points_for_bonus must be positive")
	case c.Game.MineralSpawnMin > c.Game.MineralSpawnMax:
		return fmt.Errorf("game.mineral_spawn_min %d > mineral_spawn_max %d", c.Game.MineralSpawnMin, c.Game.MineralSpawnMax)
	case c.Boss.MineralSpawnMin > c.Boss.MineralSpawnMax:
		return fmt.Errorf("boss.mineral_spawn_min %d > mineral_spawn_max %d", c.Boss.MineralSpawnMin, c.Boss.MineralSpawnMax)
	case c.Wave.BossEvery <= 0:
		return fmt.Errorf("wave.boss_every must be positive")
	case c.Pools.BulletsPerPlayer <= 0 || c.Pools.AIBullets <= 0:
		return fmt.Errorf("bullet pools must be positive")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			Width:    1400,
			Height:   800,
			EdgeSize: 32,
			TickRate: 16 * time.Millisecond,
		},
		Ship: ShipConfig{
			TurnRate:         135,
			AngularDrag:      500,
			Acceleration:     1200,
			MaxVelocity:      200,
			Drag:             130,
			Radius:           14,
			FireRateMs:       250,
			DeadTimeMs:       5000,
			JoinSpawnDelayMs: 1000,
			BulletSpeed:      500,
			BulletLifetimeMs: 1000,
		},
		Game: GameConfig{
			StartingEnergy:           100,
			StartingShips:            3,
			PointsForBonus:           20000,
			RejoinCooldownMs:         8000,
			MineralSpawnMin:          1,
			MineralSpawnMax:          4,
			AlienDropCount:           1,
			AlienSpawnMinMs:          5000,
			AlienSpawnMaxMs:          15000,
			BaseRadius:               40,
			BaseHitByBulletPenalty:   -1,
			BaseHitByAsteroidPenalty: -25,
			BaseHitByAlienPenalty:    -50,
			BaseHitByPlayerPenalty:   -10,
			AsteroidRadius:           24,
			MineralRadius:            8,
			AlienRadius:              16,
			BulletRadius:             3,
		},
		Boss: BossConfig{
			Health:              50,
			HealthPerAppearance: 25,
			DescendSpeed:        40,
			Radius:              64,
			ShootMinMs:          250,
			ShootMaxMs:          1000,
			TargetChance:        0.5,
			RangeMultiplier:     1.25,
			MineralSpawnMin:     10,
			MineralSpawnMax:     20,
			BaseRetreatSpeed:    120,
			ReassembleTimeoutMs: 10000,
		},
		Harvester: HarvesterConfig{
			Acceleration:     900,
			MaxVelocity:      150,
			Drag:             100,
			AngularDrag:      500,
			Radius:           8,
			DeadTimeMs:       5000,
			LaunchDelayMs:    1000,
			BaseSpawnAdjustY: 40,
		},
		Turret: TurretConfig{
			AngleRangeDeg:    60,
			FireRateMs:       750,
			BulletLifetimeMs: 600,
		},
		AI: AIConfig{
			AvoidRange:    250,
			CloseRange:    200,
			SpeedRatio:    0.25,
			TurnRate:      4.2,
			CloseTurnRate: 6.0,
			AvoidTurnRate: 4.2,
			FireConeDeg:   10,
			FireRange:     450,
		},
		Wave: WaveConfig{
			BossEvery:          5,
			IntermissionMs:     3000,
			AsteroidsBase:      4,
			AsteroidsPerWave:   2,
			AliensBase:         1,
			AliensPerWave:      1,
			AsteroidIntervalMs: 2000,
			MaxActiveMinerals:  40,
		},
		Pools: PoolsConfig{
			BulletsPerPlayer: 10,
			AIBullets:        40,
			Asteroids:        20,
			Minerals:         100,
			Aliens:           8,
			Harvesters:       16,
			Turrets:          16,
		},
		Data: DataConfig{
			YAMLDir:    "data/yaml",
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Demo: DemoConfig{
			AIPlayers:      2,
			StatusInterval: 10 * time.Second,
		},
	}
}
