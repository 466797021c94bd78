package packet

import "fmt"

// Emote is the animation code played by the client. Values outside the
// named set are legal on the wire and are forwarded unchanged.
type Emote uint8

const (
	EmotePoint      Emote = 0
	EmoteBow        Emote = 1
	EmoteSalute     Emote = 2
	EmoteKneel      Emote = 3
	EmoteLaugh      Emote = 4
	EmoteCry        Emote = 5
	EmoteNo         Emote = 6
	EmoteYes        Emote = 7
	EmoteWave       Emote = 8
	EmoteGoodbye    Emote = 9
	EmoteWelcome    Emote = 10
	EmoteJoy        Emote = 11
	EmoteCheer      Emote = 12
	EmoteClap       Emote = 13
	EmotePraise     Emote = 14
	EmoteSmile      Emote = 15
	EmotePoke       Emote = 16
	EmoteSlap       Emote = 17
	EmoteStagger    Emote = 18
	EmoteSigh       Emote = 19
	EmoteComfort    Emote = 20
	EmoteSurprised  Emote = 21
	EmoteAmazed     Emote = 22
	EmoteStare      Emote = 23
	EmoteBlush      Emote = 24
	EmoteAngry      Emote = 25
	EmoteDisgusted  Emote = 26
	EmoteMuted      Emote = 27
	EmoteDoze       Emote = 28
	EmotePanic      Emote = 29
	EmoteGrin       Emote = 30
	EmoteDance      Emote = 31
	EmoteThink      Emote = 32
	EmoteFume       Emote = 33
	EmoteDoubt      Emote = 34
	EmoteSulk       Emote = 35
	EmotePsych      Emote = 36
	EmoteHuh        Emote = 37
	EmoteShocked    Emote = 38
	EmoteLogging    Emote = 40
	EmoteExcavation Emote = 41
	EmoteHarvesting Emote = 42
	EmoteHurray     Emote = 43
	EmoteToss       Emote = 44
	EmoteJob        Emote = 74
)

var emoteNames = map[Emote]string{
	EmotePoint: "POINT", EmoteBow: "BOW", EmoteSalute: "SALUTE", EmoteKneel: "KNEEL",
	EmoteLaugh: "LAUGH", EmoteCry: "CRY", EmoteNo: "NO", EmoteYes: "YES",
	EmoteWave: "WAVE", EmoteGoodbye: "GOODBYE", EmoteWelcome: "WELCOME", EmoteJoy: "JOY",
	EmoteCheer: "CHEER", EmoteClap: "CLAP", EmotePraise: "PRAISE", EmoteSmile: "SMILE",
	EmotePoke: "POKE", EmoteSlap: "SLAP", EmoteStagger: "STAGGER", EmoteSigh: "SIGH",
	EmoteComfort: "COMFORT", EmoteSurprised: "SURPRISED", EmoteAmazed: "AMAZED", EmoteStare: "STARE",
	EmoteBlush: "BLUSH", EmoteAngry: "ANGRY", EmoteDisgusted: "DISGUSTED", EmoteMuted: "MUTED",
	EmoteDoze: "DOZE", EmotePanic: "PANIC", EmoteGrin: "GRIN", EmoteDance: "DANCE",
	EmoteThink: "THINK", EmoteFume: "FUME", EmoteDoubt: "DOUBT", EmoteSulk: "SULK",
	EmotePsych: "PSYCH", EmoteHuh: "HUH", EmoteShocked: "SHOCKED",
	EmoteLogging: "LOGGING", EmoteExcavation: "EXCAVATION", EmoteHarvesting: "HARVESTING",
	EmoteHurray: "HURRAY", EmoteToss: "TOSS", EmoteJob: "JOB",
}

func (e Emote) String() string {
	if n, ok := emoteNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Emote(%d)", uint8(e))
}

// EmoteMode selects whether the client shows the motion, the chat text, or both.
type EmoteMode uint8

const (
	EmoteModeAll    EmoteMode = 0
	EmoteModeText   EmoteMode = 1
	EmoteModeMotion EmoteMode = 2
)

func (m EmoteMode) String() string {
	switch m {
	case EmoteModeAll:
		return "ALL"
	case EmoteModeText:
		return "TEXT"
	case EmoteModeMotion:
		return "MOTION"
	default:
		return fmt.Sprintf("EmoteMode(%d)", uint8(m))
	}
}
