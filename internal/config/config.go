package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	TPS          = 60

	// Simulation clock
	TimeStep = 0.016

	// Sphere
	ParticleCount = 5500
	BaseRadius    = 260.0
	Perspective   = 800.0

	// Population thresholds on the layer draw
	CoreThreshold  = 0.04
	InnerThreshold = 0.25

	// Wander
	WanderInclination = 0.06
	WanderAzimuth     = 0.08
	WaveAmplitude     = 0.04

	// Rendering
	FadeAlpha        = 0.15
	MinParticleAlpha = 0.02
	MinEdgeAlpha     = 0.01
	EdgeAlphaScale   = 0.45
	EdgeWidth        = 0.6
	BackFaceCull     = -0.15 // fraction of BaseRadius
	GlowRadius       = 2.2   // fraction of BaseRadius
	CoreHaloScale    = 6
	InnerHaloScale   = 3
	InnerHaloAlpha   = 0.5
	HaloAlphaScale   = 0.3

	// Connection network
	CoreMaxEdges     = 5
	InnerMaxEdges    = 2
	CoreMaxDistance  = 120.0
	InnerMaxDistance = 70.0

	// Ambient drone
	HumEnabled     = true
	HumSampleRate  = 44100
	HumFrequency   = 55.0
	HumVolume      = -3.5 // log2 gain
	HumTapSize     = 4096
	StatusInterval = 10 * TPS // ticks between status logs

	// GIF preview
	GIFWidth  = 480
	GIFHeight = 480
	GIFFrames = 90
	GIFDelay  = 3 // 100ths of a second
	GIFStride = 2 // simulation ticks per GIF frame
)
