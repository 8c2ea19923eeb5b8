package service

import (
	"math/rand"

	"github.com/arrebolmedia/video-editor/model"
)

// Suggestions is one computed proposal for a version: which scenes to open
// and close with, the anchor moments to build the body from, and songs.
// Opening, closing and songs are the persisted snapshot; the anchor ordering
// is advisory and recomputed on demand.
type Suggestions struct {
	Opening model.SceneList `json:"opening"`
	Anchor  model.SceneList `json:"anchor"`
	Closing model.SceneList `json:"closing"`
	Songs   model.SongList  `json:"songs"`
}

// Suggester proposes scene and song selections for a version. The randomness
// source is injected so tests can pin the shuffle.
type Suggester struct {
	rng *rand.Rand
}

func NewSuggester(rng *rand.Rand) *Suggester {
	return &Suggester{rng: rng}
}

// anchorCountByType is how many anchor moments each cut gets.
var anchorCountByType = map[string]int{
	model.VersionTypeShort:  5,
	model.VersionTypeMedium: 10,
	model.VersionTypeLong:   15,
}

// Suggest builds a proposal from the project's scenes for the given version.
// When fewer tagged scenes exist than the target count, everything available
// is returned.
func (s *Suggester) Suggest(version *model.Version, scenes []model.Scene) Suggestions {
	opening := s.shuffleScenes(filterScenes(scenes, isOpeningScene))
	anchors := s.shuffleScenes(filterScenes(scenes, isAnchorScene))
	closing := s.shuffleScenes(filterScenes(scenes, isClosingScene))

	anchorCount := anchorCountByType[model.VersionTypeShort]
	if n, ok := anchorCountByType[version.Type]; ok {
		anchorCount = n
	}

	return Suggestions{
		Opening: truncateScenes(opening, 1),
		Anchor:  truncateScenes(anchors, anchorCount),
		Closing: truncateScenes(closing, 1),
		Songs:   s.suggestSongs(version.Type),
	}
}

// suggestSongs picks one classic track for the teaser and one per catalog for
// the highlights. The full cut uses the ceremony audio, so no songs.
func (s *Suggester) suggestSongs(versionType string) model.SongList {
	switch versionType {
	case model.VersionTypeShort:
		return model.SongList{s.pickSong(model.ClassicSongs)}
	case model.VersionTypeMedium:
		return model.SongList{
			s.pickSong(model.ClassicSongs),
			s.pickSong(model.InstrumentalSongs),
			s.pickSong(model.ModernSongs),
		}
	default:
		return nil
	}
}

func (s *Suggester) pickSong(catalog model.SongList) model.Song {
	return catalog[s.rng.Intn(len(catalog))]
}

func (s *Suggester) shuffleScenes(scenes model.SceneList) model.SceneList {
	out := make(model.SceneList, len(scenes))
	copy(out, scenes)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func isOpeningScene(sc model.Scene) bool {
	return sc.AnchorDescription == "OPENING" ||
		sc.AnchorDescription == model.AnchorFirstLookNovio
}

func isAnchorScene(sc model.Scene) bool {
	return sc.IsAnchorMoment == model.AnchorYes
}

func isClosingScene(sc model.Scene) bool {
	return sc.AnchorDescription == "CLOSING" ||
		(sc.IsAnchorMoment == model.AnchorYes && sc.Division == model.DivisionResolucion)
}

func filterScenes(scenes []model.Scene, keep func(model.Scene) bool) model.SceneList {
	var out model.SceneList
	for _, sc := range scenes {
		if keep(sc) {
			out = append(out, sc)
		}
	}
	return out
}

func truncateScenes(scenes model.SceneList, n int) model.SceneList {
	if len(scenes) <= n {
		return scenes
	}
	return scenes[:n]
}
