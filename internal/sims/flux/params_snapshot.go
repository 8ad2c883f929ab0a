package flux

import (
	"strconv"

	"fluxsim/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cur.Width()),
				intParam("h", "Height", w.cur.Height()),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				stringParam("scene", "Scene", w.cfg.Scene),
				stringParam("image", "Image", w.cfg.Image),
				stringParam("brush", "Brush", w.cfg.Brush.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
