package system

import (
	"io"
	"time"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/component"
	"github.com/l1jgo/camcycle/internal/core/ecs"
	"github.com/l1jgo/camcycle/internal/core/event"
	coresys "github.com/l1jgo/camcycle/internal/core/system"
	"github.com/l1jgo/camcycle/internal/input"
	"github.com/l1jgo/camcycle/internal/scene"
	"go.uber.org/zap"
)

// CameraDeps bundles everything the camera systems read or mutate.
type CameraDeps struct {
	Controller *camera.Controller
	Registry   *camera.Registry
	Scene      *scene.Scene
	Keys       *input.Keys
	CycleKey   input.Key
	Bus        *event.Bus
	Out        io.Writer // console report
	Log        *zap.Logger
}

// RegisterCamera registers the camera cycling systems with r.
func RegisterCamera(r *coresys.Runner, d CameraDeps) {
	r.Register(NewCameraCycleSystem(d))
	r.Register(NewCameraSwitchSystem(d))
	r.Register(NewCameraBindSystem(d.Registry, d.Scene.CameraQuery()))
	r.Register(NewCameraReportSystem(d))
}

// CameraCycleSystem advances the active slot when the cycle key is pressed.
// Phase 2 (Update).
type CameraCycleSystem struct {
	ctrl *camera.Controller
	keys *input.Keys
	key  input.Key
	bus  *event.Bus
	log  *zap.Logger
}

func NewCameraCycleSystem(d CameraDeps) *CameraCycleSystem {
	return &CameraCycleSystem{ctrl: d.Controller, keys: d.Keys, key: d.CycleKey, bus: d.Bus, log: d.Log}
}

func (s *CameraCycleSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *CameraCycleSystem) Update(_ time.Duration) {
	if !s.keys.JustPressed(s.key) {
		return
	}
	from, to := s.ctrl.Advance()
	event.Emit(s.bus, event.CameraCycled{From: from.String(), To: to.String()})
	s.log.Info("camera slot advanced",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
}

// CameraSwitchSystem hands the render designation to the camera of the
// active slot, on the same tick the slot advanced.
// Phase 3 (PostUpdate).
type CameraSwitchSystem struct {
	ctrl *camera.Controller
	reg  *camera.Registry
	cams camera.Cameras
	keys *input.Keys
	key  input.Key
	bus  *event.Bus
	log  *zap.Logger
}

func NewCameraSwitchSystem(d CameraDeps) *CameraSwitchSystem {
	return &CameraSwitchSystem{
		ctrl: d.Controller,
		reg:  d.Registry,
		cams: d.Scene.CameraQuery(),
		keys: d.Keys,
		key:  d.CycleKey,
		bus:  d.Bus,
		log:  d.Log,
	}
}

func (s *CameraSwitchSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *CameraSwitchSystem) Update(_ time.Duration) {
	if !s.keys.JustPressed(s.key) {
		return
	}
	sw, ok := s.ctrl.Sync(s.reg, s.cams)
	if !ok {
		s.log.Debug("render camera unchanged", zap.Stringer("slot", s.ctrl.Current()))
		return
	}
	event.Emit(s.bus, event.CameraSwitched{
		Entity: sw.Entity,
		Label:  camera.RenderLabel,
		From:   sw.From.String(),
		To:     sw.To.String(),
	})
	s.log.Info("render camera switched",
		zap.Stringer("from", sw.From),
		zap.Stringer("to", sw.To),
		zap.Uint64("entity", uint64(sw.Entity)),
	)
}

// CameraBindSystem binds unbound registry labels to the cameras carrying
// those labels.
// Phase 4 (Bind).
type CameraBindSystem struct {
	reg  *camera.Registry
	cams camera.Cameras
}

func NewCameraBindSystem(reg *camera.Registry, cams camera.Cameras) *CameraBindSystem {
	return &CameraBindSystem{reg: reg, cams: cams}
}

func (s *CameraBindSystem) Phase() coresys.Phase { return coresys.PhaseBind }

func (s *CameraBindSystem) Update(_ time.Duration) {
	s.reg.Bind(s.cams)
}

// CameraReportSystem prints every active label and its camera's slot
// when the cycle key is pressed.
// Phase 5 (Output).
type CameraReportSystem struct {
	ctrl       *camera.Controller
	reg        *camera.Registry
	cams       camera.Cameras
	transforms *ecs.Store[component.Transform]
	keys       *input.Keys
	key        input.Key
	out        io.Writer
	log        *zap.Logger
}

func NewCameraReportSystem(d CameraDeps) *CameraReportSystem {
	return &CameraReportSystem{
		ctrl:       d.Controller,
		reg:        d.Registry,
		cams:       d.Scene.CameraQuery(),
		transforms: d.Scene.Transforms,
		keys:       d.Keys,
		key:        d.CycleKey,
		out:        d.Out,
		log:        d.Log,
	}
}

func (s *CameraReportSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *CameraReportSystem) Update(_ time.Duration) {
	if !s.keys.JustPressed(s.key) {
		return
	}
	if err := camera.WriteReport(s.out, s.ctrl.Report(s.reg, s.cams)); err != nil {
		s.log.Warn("camera report failed", zap.Error(err))
	}

	id, ok := s.reg.Entity(camera.RenderLabel)
	if !ok {
		return
	}
	t, ok := s.transforms.Get(id)
	if !ok {
		return
	}
	_, cam, ok := s.cams.Get(id)
	if !ok {
		return
	}
	eye, fwd := t.Translation, scene.Forward(t)
	fields := []zap.Field{
		zap.Float32s("eye", eye[:]),
		zap.Float32s("forward", fwd[:]),
	}
	if ndc, ok := scene.Project(t, cam, t.Target); ok {
		fields = append(fields, zap.Float32s("target_ndc", ndc[:]))
	}
	s.log.Debug("render camera view", fields...)
}
