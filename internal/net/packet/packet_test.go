package packet

import (
	"bytes"
	"testing"
)

func TestWriterPadsToFourBytes(t *testing.T) {
	w := NewWriterWithOpcode(0x01)
	w.WriteH(0x0302)
	if w.Len() != 3 {
		t.Fatalf("unpadded len = %d", w.Len())
	}
	got := w.Bytes()
	want := []byte{0x01, 0x02, 0x03, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x want % x", got, want)
	}
}

func TestWriterLittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteDU(0x04030201)
	w.WriteD(-1)
	want := []byte{0x01, 0x02, 0x03, 0x04, 0xff, 0xff, 0xff, 0xff}
	if got := w.RawBytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % x want % x", got, want)
	}
}

func TestCharEmotionLayout(t *testing.T) {
	p := &CharEmotion{
		ActorID:      0x01020304,
		ActorTargID:  0x0401,
		TargetID:     42,
		TargetTargID: 7,
		Emote:        EmoteLogging,
		Mode:         EmoteModeMotion,
	}
	want := []byte{
		0x5A,
		0x04, 0x03, 0x02, 0x01,
		42, 0, 0, 0,
		0x01, 0x04,
		7, 0,
		40, 2,
		0, 0,
		0, 0, 0, // padding
	}
	if got := p.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got % x\nwant % x", got, want)
	}
}

func TestParseCharEmotion(t *testing.T) {
	in := &CharEmotion{ActorID: 9, ActorTargID: 3, TargetID: 42, TargetTargID: 7, Emote: Emote(255), Mode: EmoteMode(9), Extra: 0}
	out, err := ParseCharEmotion(in.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *out != *in {
		t.Fatalf("got %+v want %+v", *out, *in)
	}

	if _, err := ParseCharEmotion([]byte{0x01, 0, 0, 0}); err == nil {
		t.Fatalf("expected opcode error")
	}
	if _, err := ParseCharEmotion([]byte{S_OPCODE_CHAR_EMOTION, 0, 0, 0}); err == nil {
		t.Fatalf("expected short packet error")
	}
}

func TestEmoteStringPassesUnknownCodes(t *testing.T) {
	cases := []struct {
		in   Emote
		want string
	}{
		{EmoteLogging, "LOGGING"},
		{EmoteHarvesting, "HARVESTING"},
		{Emote(39), "Emote(39)"},
		{Emote(255), "Emote(255)"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("Emote(%d).String() = %q want %q", uint8(c.in), got, c.want)
		}
	}
	if got := EmoteMode(2).String(); got != "MOTION" {
		t.Fatalf("mode 2 = %q", got)
	}
	if got := EmoteMode(200).String(); got != "EmoteMode(200)" {
		t.Fatalf("mode 200 = %q", got)
	}
}

func TestOutboxDrainIsFIFO(t *testing.T) {
	o := NewOutbox(2)
	a := &CharEmotion{Emote: 1}
	b := &CharEmotion{Emote: 2}
	c := &CharEmotion{Emote: 3}
	o.Push(a)
	o.Push(b)
	o.Push(c) // past the hint
	if o.Len() != 3 {
		t.Fatalf("len = %d", o.Len())
	}
	got := o.Drain()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("unexpected drain order %v", got)
	}
	if o.Len() != 0 || o.Drain() != nil {
		t.Fatalf("outbox not empty after drain")
	}
}
