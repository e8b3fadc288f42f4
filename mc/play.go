package mc

// Play-state packet IDs, pinned to the 1.16.x generation the lobby targets
// -- the one Notchian protocol version spread wide enough across vanilla
// clients still connecting to idle servers that it is worth synthesising
// by hand instead of negotiating per-client IDs.
const (
	JoinGamePacketID              byte = 0x24
	ChunkDataPacketID             byte = 0x20
	PlayerPositionAndLookPacketID byte = 0x34
	KeepAlivePlayClientPacketID   byte = 0x1F
	KeepAlivePlayServerPacketID   byte = 0x0F
	PlayDisconnectPacketID        byte = 0x19
	TitlePacketID                 byte = 0x4B
)

// ClientBoundJoinGame starts the play state. The lobby fills in a single
// fabricated dimension rather than echoing a real server's registry.
type ClientBoundJoinGame struct {
	EntityID         Int
	IsHardcore       Boolean
	Gamemode         UnsignedByte
	PreviousGamemode Byte
	WorldNames       []Identifier
	DimensionCodec   []byte // pre-encoded NBT compound
	Dimension        []byte // pre-encoded NBT compound
	WorldName        Identifier
	HashedSeed       Long
	MaxPlayers       VarInt
	ViewDistance     VarInt
	ReducedDebugInfo Boolean
	EnableRespawn    Boolean
	IsDebug          Boolean
	IsFlat           Boolean
}

// Marshal encodes the join-game packet as a Packet.
func (j ClientBoundJoinGame) Marshal() Packet {
	pk := Packet{ID: JoinGamePacketID}
	pk.Data = append(pk.Data, j.EntityID.Encode()...)
	pk.Data = append(pk.Data, j.IsHardcore.Encode()...)
	pk.Data = append(pk.Data, j.Gamemode.Encode()...)
	pk.Data = append(pk.Data, j.PreviousGamemode.Encode()...)
	pk.Data = append(pk.Data, VarInt(len(j.WorldNames)).Encode()...)
	for _, n := range j.WorldNames {
		pk.Data = append(pk.Data, n.Encode()...)
	}
	pk.Data = append(pk.Data, j.DimensionCodec...)
	pk.Data = append(pk.Data, j.Dimension...)
	pk.Data = append(pk.Data, j.WorldName.Encode()...)
	pk.Data = append(pk.Data, j.HashedSeed.Encode()...)
	pk.Data = append(pk.Data, j.MaxPlayers.Encode()...)
	pk.Data = append(pk.Data, j.ViewDistance.Encode()...)
	pk.Data = append(pk.Data, j.ReducedDebugInfo.Encode()...)
	pk.Data = append(pk.Data, j.EnableRespawn.Encode()...)
	pk.Data = append(pk.Data, j.IsDebug.Encode()...)
	pk.Data = append(pk.Data, j.IsFlat.Encode()...)
	return pk
}

// ClientBoundChunkData carries one fully-empty chunk column -- enough for
// a spectator client to stop showing the void-loading screen.
type ClientBoundChunkData struct {
	ChunkX, ChunkZ Int
	FullChunk      Boolean
	PrimaryBitMask VarInt
	Heightmaps     []byte // pre-encoded NBT compound
	BiomesLen      VarInt
	Biomes         []VarInt
	Sections       []byte // pre-encoded section data, empty for the lobby
	BlockEntities  VarInt
}

// Marshal encodes the chunk-data packet as a Packet.
func (c ClientBoundChunkData) Marshal() Packet {
	pk := Packet{ID: ChunkDataPacketID}
	pk.Data = append(pk.Data, c.ChunkX.Encode()...)
	pk.Data = append(pk.Data, c.ChunkZ.Encode()...)
	pk.Data = append(pk.Data, c.FullChunk.Encode()...)
	pk.Data = append(pk.Data, c.PrimaryBitMask.Encode()...)
	pk.Data = append(pk.Data, c.Heightmaps...)
	pk.Data = append(pk.Data, c.BiomesLen.Encode()...)
	for _, b := range c.Biomes {
		pk.Data = append(pk.Data, b.Encode()...)
	}
	pk.Data = append(pk.Data, VarInt(len(c.Sections)).Encode()...)
	pk.Data = append(pk.Data, c.Sections...)
	pk.Data = append(pk.Data, c.BlockEntities.Encode()...)
	return pk
}

// ClientBoundPlayerPositionAndLook pins the lobby client to a single point
// in the void so it never falls.
type ClientBoundPlayerPositionAndLook struct {
	X, Y, Z    Double
	Yaw, Pitch Float
	Flags      Byte
	TeleportID VarInt
}

// Marshal encodes the position-and-look packet as a Packet.
func (p ClientBoundPlayerPositionAndLook) Marshal() Packet {
	return MarshalPacket(PlayerPositionAndLookPacketID,
		p.X, p.Y, p.Z, p.Yaw, p.Pitch, p.Flags, p.TeleportID)
}

// ClientBoundKeepAlive must be echoed by the client within a few seconds or
// vanilla disconnects itself for timing out.
type ClientBoundKeepAlive struct {
	ID Long
}

// Marshal encodes the play-state keep-alive as a Packet.
func (k ClientBoundKeepAlive) Marshal() Packet {
	return MarshalPacket(KeepAlivePlayClientPacketID, k.ID)
}

// ServerBoundKeepAlive is the client's echo of a ClientBoundKeepAlive.
type ServerBoundKeepAlive struct {
	ID Long
}

// UnmarshalServerBoundKeepAlive decodes a play-state keep-alive Packet.
func UnmarshalServerBoundKeepAlive(pk Packet) (ServerBoundKeepAlive, error) {
	var k ServerBoundKeepAlive
	if pk.ID != KeepAlivePlayServerPacketID {
		return k, ErrUnexpectedPacket
	}
	err := pk.Scan(&k.ID)
	return k, err
}

// ClientBoundPlayDisconnect ends the lobby once the real backend is ready,
// or on lobby timeout.
type ClientBoundPlayDisconnect struct {
	Reason Chat
}

// Marshal encodes the play-state disconnect as a Packet.
func (d ClientBoundPlayDisconnect) Marshal() Packet {
	return MarshalPacket(PlayDisconnectPacketID, d.Reason)
}

// TitleAction selects which of the Title packet's several sub-messages is
// being sent; the lobby only ever needs SetTitle.
type TitleAction VarInt

const (
	TitleActionSetTitle TitleAction = 0
)

// ClientBoundTitle shows the lobby's configured message as an on-screen
// title while the client waits.
type ClientBoundTitle struct {
	Action TitleAction
	Text   Chat
}

// Marshal encodes the title packet as a Packet.
func (t ClientBoundTitle) Marshal() Packet {
	return MarshalPacket(TitlePacketID, VarInt(t.Action), t.Text)
}
