// Package l10n holds the user-facing text in English, Korean and Japanese.
package l10n

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/stlalpha/srgfx/internal/settings"
)

// Lang is a supported UI language.
type Lang int

const (
	En Lang = iota
	Ko
	Ja
)

// Strings is the text table for one language.
type Strings struct {
	Title      string
	Hint       string
	Saved      string
	SaveFailed string
	NoRegistry string
	On         string
	Off        string

	QuitTitle  string
	QuitPrompt string
	Yes        string
	No         string

	fields map[settings.FieldID]string
}

// Field returns the label for an editable field.
func (s *Strings) Field(id settings.FieldID) string {
	if l, ok := s.fields[id]; ok {
		return l
	}
	return id.String()
}

var tables = map[Lang]*Strings{
	En: {
		Title:      " Star Rail Graphics Settings ",
		Hint:       " ↑↓ Navigate  ←→ Change  S Save  Q Quit ",
		Saved:      "Settings saved.",
		SaveFailed: "Save failed",
		NoRegistry: "Registry key not found — using defaults. Save to create it.",
		On:         "On",
		Off:        "Off",
		QuitTitle:  " Unsaved Changes ",
		QuitPrompt: "Save changes before exit?",
		Yes:        "Yes",
		No:         "No",
		fields: map[settings.FieldID]string{
			settings.Fps:               "FPS",
			settings.VSync:             "VSync",
			settings.RenderScale:       "Render Scale",
			settings.ResolutionQuality: "Resolution Quality",
			settings.ShadowQuality:     "Shadow Quality",
			settings.LightQuality:      "Light Quality",
			settings.CharacterQuality:  "Character Quality",
			settings.EnvDetailQuality:  "Environment Detail",
			settings.ReflectionQuality: "Reflection Quality",
			settings.SfxQuality:        "SFX Quality",
			settings.BloomQuality:      "Bloom Quality",
			settings.AaMode:            "Anti-Aliasing",
			settings.SelfShadow:        "Self Shadow",
			settings.DlssQuality:       "DLSS Quality",
			settings.ParticleTrail:     "Particle Trail",
		},
	},
	Ko: {
		Title:      " 붕괴 : 스타레일 그래픽 설정 ",
		Hint:       " ↑↓ 이동  ←→ 변경  S 저장  Q 종료 ",
		Saved:      "설정이 저장되었습니다.",
		SaveFailed: "저장 실패",
		NoRegistry: "레지스트리 키를 찾을 수 없습니다 — 기본값 사용 중. 저장하여 생성하세요.",
		On:         "켜기",
		Off:        "끄기",
		QuitTitle:  " 저장되지 않은 변경 ",
		QuitPrompt: "종료하기 전에 저장하시겠습니까?",
		Yes:        "예",
		No:         "아니요",
		fields: map[settings.FieldID]string{
			settings.Fps:               "FPS",
			settings.VSync:             "수직 동기화",
			settings.RenderScale:       "렌더 스케일",
			settings.ResolutionQuality: "해상도 품질",
			settings.ShadowQuality:     "그림자 품질",
			settings.LightQuality:      "조명 품질",
			settings.CharacterQuality:  "캐릭터 품질",
			settings.EnvDetailQuality:  "환경 디테일",
			settings.ReflectionQuality: "반사 품질",
			settings.SfxQuality:        "효과 품질",
			settings.BloomQuality:      "블룸 품질",
			settings.AaMode:            "안티앨리어싱",
			settings.SelfShadow:        "셀프 쉘도우",
			settings.DlssQuality:       "DLSS 품질",
			settings.ParticleTrail:     "파티클 트레일",
		},
	},
	Ja: {
		Title:      " 崩壊：スターレイル グラフィック設定 ",
		Hint:       " ↑↓ 移動  ←→ 変更  S 保存  Q 終了 ",
		Saved:      "設定が保存されました。",
		SaveFailed: "保存失敗",
		NoRegistry: "レジストリキーが見つかりません — デフォルト値を使用中。保存して作成してください。",
		On:         "オン",
		Off:        "オフ",
		QuitTitle:  " 未保存の変更 ",
		QuitPrompt: "終了する前に保存しますか？",
		Yes:        "はい",
		No:         "いいえ",
		fields: map[settings.FieldID]string{
			settings.Fps:               "FPS",
			settings.VSync:             "垂直同期",
			settings.RenderScale:       "レンダースケール",
			settings.ResolutionQuality: "解像度品質",
			settings.ShadowQuality:     "影の品質",
			settings.LightQuality:      "ライト品質",
			settings.CharacterQuality:  "キャラクター品質",
			settings.EnvDetailQuality:  "環境ディテール",
			settings.ReflectionQuality: "反射品質",
			settings.SfxQuality:        "エフェクト品質",
			settings.BloomQuality:      "ブルーム品質",
			settings.AaMode:            "アンチエイリアス",
			settings.SelfShadow:        "セルフシャドウ",
			settings.DlssQuality:       "DLSS品質",
			settings.ParticleTrail:     "パーティクルトレイル",
		},
	},
}

// For returns the text table for lang, falling back to English.
func For(lang Lang) *Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[En]
}

// Choice is one entry on the language picker.
type Choice struct {
	Key   string
	Label string
	Lang  Lang
}

// Languages returns the picker entries in display order.
func Languages() []Choice {
	return []Choice{
		{"1", "English", En},
		{"2", "한국어 (Korean)", Ko},
		{"3", "日本語 (Japanese)", Ja},
	}
}

var (
	supported = []language.Tag{language.English, language.Korean, language.Japanese}
	matcher   = language.NewMatcher(supported)
)

// Match maps a language tag or POSIX locale (e.g. "ko_KR.UTF-8") to a
// supported language.
func Match(s string) (Lang, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return En, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return En, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return En, false
	}
	return Lang(idx), true
}

// FromEnv returns the language named by the locale environment, checked
// in POSIX precedence order, or English.
func FromEnv() Lang {
	for _, v := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := os.Getenv(v); val != "" {
			lang, _ := Match(val)
			return lang
		}
	}
	return En
}
