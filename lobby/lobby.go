// Package lobby implements the two levels of "hold" a client can be put
// through while the backend starts: a one-shot kick, or a synthesised
// play-state world that keeps the client connected.
package lobby

import (
	"time"

	"github.com/dragonmc/lazygate/config"
	"github.com/dragonmc/lazygate/mc"
	"github.com/dragonmc/lazygate/session"
)

const keepAliveInterval = 10 * time.Second

// KickHold sends a single LoginDisconnect and lets the caller close the
// socket. This is always available, lobby or not, and is what the
// connection handler falls back to when the lobby is disabled.
func KickHold(conn *mc.Conn, message string) error {
	return conn.WriteMcPacket(mc.ClientBoundLoginDisconnect{
		Reason: mc.MustEncodeChat(mc.NewChatMessage(message)),
	})
}

// Outcome reports why RunLobby returned.
type Outcome int

const (
	OutcomeBackendReady Outcome = iota
	OutcomeTimeout
	OutcomeClientClosed
	OutcomeError
)

// RunLobby completes the login->play transition with a synthesised void
// world, then blocks until ready fires (the backend is confirmed Started)
// or cfg.Lobby.TimeoutSeconds elapses, whichever comes first.
//
// The lobby never attempts to hand the open socket to the backend: the
// client must reconnect on its own once told the server is ready. No
// protocol state here (compression, encryption, entity ids) could survive
// a handoff anyway.
func RunLobby(conn *mc.Conn, sess session.Session, cfg config.Configuration, ready <-chan struct{}) (Outcome, error) {
	if err := conn.WriteMcPacket(mc.ClientBoundLoginSuccess{
		UUID:     sess.UUID,
		Username: mc.String(sess.Username),
	}); err != nil {
		return OutcomeError, err
	}

	if err := sendJoinSequence(conn); err != nil {
		return OutcomeError, err
	}

	if err := conn.WriteMcPacket(mc.ClientBoundTitle{
		Action: mc.TitleActionSetTitle,
		Text:   mc.MustEncodeChat(mc.NewChatMessage(cfg.Lobby.Message)),
	}); err != nil {
		return OutcomeError, err
	}

	clientClosed := make(chan struct{})
	go drainClientKeepAlives(conn, clientClosed)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()
	timeout := time.NewTimer(cfg.LobbyTimeout())
	defer timeout.Stop()

	var keepAliveID int64
	for {
		select {
		case <-ready:
			conn.WriteMcPacket(mc.ClientBoundPlayDisconnect{
				Reason: mc.MustEncodeChat(mc.NewChatMessage("Server ready, please reconnect")),
			})
			return OutcomeBackendReady, nil
		case <-timeout.C:
			conn.WriteMcPacket(mc.ClientBoundPlayDisconnect{
				Reason: mc.MustEncodeChat(mc.NewChatMessage("Server did not start in time, please reconnect")),
			})
			return OutcomeTimeout, nil
		case <-clientClosed:
			return OutcomeClientClosed, nil
		case <-ticker.C:
			keepAliveID++
			if err := conn.WriteMcPacket(mc.ClientBoundKeepAlive{ID: mc.Long(keepAliveID)}); err != nil {
				return OutcomeError, err
			}
		}
	}
}

// sendJoinSequence emits JoinGame, one empty chunk, and a fixed position
// lock, the minimum a vanilla client needs to stop showing the
// void-loading screen and stand still.
func sendJoinSequence(conn *mc.Conn) error {
	codec, err := mc.EncodeNBT(mc.NewLobbyDimensionCodec())
	if err != nil {
		return err
	}
	dim, err := mc.EncodeNBT(mc.NewLobbyDimensionCodec().DimensionType.Value[0].Element)
	if err != nil {
		return err
	}

	join := mc.ClientBoundJoinGame{
		EntityID:         1,
		IsHardcore:       false,
		Gamemode:         3, // spectator
		PreviousGamemode: -1,
		WorldNames:       []mc.Identifier{"minecraft:overworld"},
		DimensionCodec:   codec,
		Dimension:        dim,
		WorldName:        "minecraft:overworld",
		HashedSeed:       0,
		MaxPlayers:       20,
		ViewDistance:     2,
		ReducedDebugInfo: false,
		EnableRespawn:    true,
		IsDebug:          false,
		IsFlat:           true,
	}
	if err := conn.WriteMcPacket(join); err != nil {
		return err
	}

	heightmaps, err := mc.EncodeNBT(mc.NewEmptyHeightmaps())
	if err != nil {
		return err
	}
	chunk := mc.ClientBoundChunkData{
		ChunkX:         0,
		ChunkZ:         0,
		FullChunk:      true,
		PrimaryBitMask: 0,
		Heightmaps:     heightmaps,
		BiomesLen:      0,
	}
	if err := conn.WriteMcPacket(chunk); err != nil {
		return err
	}

	pos := mc.ClientBoundPlayerPositionAndLook{
		X: 0, Y: 64, Z: 0,
		Yaw: 0, Pitch: 0,
		Flags:      0,
		TeleportID: 1,
	}
	return conn.WriteMcPacket(pos)
}

// drainClientKeepAlives consumes whatever the client sends back (mostly
// its own keep-alive echoes) until the socket errors or closes, at which
// point it signals closed.
func drainClientKeepAlives(conn *mc.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, err := conn.ReadPacket(); err != nil {
			return
		}
	}
}
