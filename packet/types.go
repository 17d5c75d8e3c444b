package packet

// Type is the first byte of a raw UDP packet.
type Type byte

// Raw packet types.
const (
	TypeRemotePing                  Type = 0
	TypeRemotePong                  Type = 1
	TypeRemoteIDRequest             Type = 2
	TypeRemoteIDResponse            Type = 3
	TypeRemoteDisconnect            Type = 4
	TypeRemoteState                 Type = 5
	TypeRemoteStateAck              Type = 6
	TypeRemoteDisconnectAck         Type = 7
	TypeRemoteGameQuery             Type = 8
	TypeRemoteGameResponse          Type = 9
	TypeRemoteState2                Type = 10
	TypeSimplePing                  Type = 11
	TypeSimplePong                  Type = 12
	TypeJSONPing                    Type = 13
	TypeJSONPong                    Type = 14
	TypePoke                        Type = 21
	TypeHostQuery                   Type = 22
	TypeHostQueryResponse           Type = 23
	TypeClientRequest               Type = 24
	TypeClientAccept                Type = 25
	TypeClientDeny                  Type = 26
	TypeClientDenyVersionMismatch   Type = 27
	TypeClientDenyAlreadyInParty    Type = 28
	TypeClientDenyPartyFull         Type = 29
	TypeDisconnectFromClientRequest Type = 32
	TypeDisconnectFromClientAck     Type = 33
	TypeDisconnectFromHostRequest   Type = 34
	TypeDisconnectFromHostAck       Type = 35
	TypeClientGamePacketCompressed  Type = 36
	TypeHostGamePacketCompressed    Type = 37
)

var typeNames = map[Type]string{
	TypeRemotePing:                  "BA_PACKET_REMOTE_PING",
	TypeRemotePong:                  "BA_PACKET_REMOTE_PONG",
	TypeRemoteIDRequest:             "BA_PACKET_REMOTE_ID_REQUEST",
	TypeRemoteIDResponse:            "BA_PACKET_REMOTE_ID_RESPONSE",
	TypeRemoteDisconnect:            "BA_PACKET_REMOTE_DISCONNECT",
	TypeRemoteState:                 "BA_PACKET_REMOTE_STATE",
	TypeRemoteStateAck:              "BA_PACKET_REMOTE_STATE_ACK",
	TypeRemoteDisconnectAck:         "BA_PACKET_REMOTE_DISCONNECT_ACK",
	TypeRemoteGameQuery:             "BA_PACKET_REMOTE_GAME_QUERY",
	TypeRemoteGameResponse:          "BA_PACKET_REMOTE_GAME_RESPONSE",
	TypeRemoteState2:                "BA_PACKET_REMOTE_STATE2",
	TypeSimplePing:                  "BA_PACKET_SIMPLE_PING",
	TypeSimplePong:                  "BA_PACKET_SIMPLE_PONG",
	TypeJSONPing:                    "BA_PACKET_JSON_PING",
	TypeJSONPong:                    "BA_PACKET_JSON_PONG",
	TypePoke:                        "BA_PACKET_POKE",
	TypeHostQuery:                   "BA_PACKET_HOST_QUERY",
	TypeHostQueryResponse:           "BA_PACKET_HOST_QUERY_RESPONSE",
	TypeClientRequest:               "BA_PACKET_CLIENT_REQUEST",
	TypeClientAccept:                "BA_PACKET_CLIENT_ACCEPT",
	TypeClientDeny:                  "BA_PACKET_CLIENT_DENY",
	TypeClientDenyVersionMismatch:   "BA_PACKET_CLIENT_DENY_VERSION_MISMATCH",
	TypeClientDenyAlreadyInParty:    "BA_PACKET_CLIENT_DENY_ALREADY_IN_PARTY",
	TypeClientDenyPartyFull:         "BA_PACKET_CLIENT_DENY_PARTY_FULL",
	TypeDisconnectFromClientRequest: "BA_PACKET_DISCONNECT_FROM_CLIENT_REQUEST",
	TypeDisconnectFromClientAck:     "BA_PACKET_DISCONNECT_FROM_CLIENT_ACK",
	TypeDisconnectFromHostRequest:   "BA_PACKET_DISCONNECT_FROM_HOST_REQUEST",
	TypeDisconnectFromHostAck:       "BA_PACKET_DISCONNECT_FROM_HOST_ACK",
	TypeClientGamePacketCompressed:  "BA_PACKET_CLIENT_GAMEPACKET_COMPRESSED",
	TypeHostGamePacketCompressed:    "BA_PACKET_HOST_GAMEPACKET_COMPRESSED",
}

func (t Type) String() string { return lookup(typeNames, t) }

// SceneType is the first byte of a decompressed scene packet.
type SceneType byte

const (
	SceneHandshake         SceneType = 15
	SceneHandshakeResponse SceneType = 16
	SceneMessage           SceneType = 17
	SceneMessageUnreliable SceneType = 18
	SceneDisconnect        SceneType = 19
	SceneKeepalive         SceneType = 20
)

var sceneNames = map[SceneType]string{
	SceneHandshake:         "BA_SCENEPACKET_HANDSHAKE",
	SceneHandshakeResponse: "BA_SCENEPACKET_HANDSHAKE_RESPONSE",
	SceneMessage:           "BA_SCENEPACKET_MESSAGE",
	SceneMessageUnreliable: "BA_SCENEPACKET_MESSAGE_UNRELIABLE",
	SceneDisconnect:        "BA_SCENEPACKET_DISCONNECT",
	SceneKeepalive:         "BA_SCENEPACKET_KEEPALIVE",
}

func (t SceneType) String() string { return lookup(sceneNames, t) }

// MessageType identifies a game message carried in a scene message packet.
type MessageType byte

const (
	MessageSessionReset              MessageType = 0
	MessageSessionCommands           MessageType = 1
	MessageSessionDynamicsCorrection MessageType = 2
	MessageNull                      MessageType = 3
	MessageRequestRemotePlayer       MessageType = 4
	MessageAttachRemotePlayer        MessageType = 5 // obsolete, see MessageAttachRemotePlayer2
	MessageDetachRemotePlayer        MessageType = 6
	MessageRemotePlayerInputCommands MessageType = 7
	MessageRemoveRemotePlayer        MessageType = 8
	MessagePartyRoster               MessageType = 9
	MessageChat                      MessageType = 10
	MessagePartyMemberJoined         MessageType = 11
	MessagePartyMemberLeft           MessageType = 12
	MessageMultipart                 MessageType = 13
	MessageMultipartEnd              MessageType = 14
	MessageClientPlayerProfiles      MessageType = 15
	MessageAttachRemotePlayer2       MessageType = 16
	MessageHostInfo                  MessageType = 17
	MessageClientInfo                MessageType = 18
	MessageKickVote                  MessageType = 19
	MessageJMessage                  MessageType = 20
	MessageClientPlayerProfilesJSON  MessageType = 21
)

var messageNames = map[MessageType]string{
	MessageSessionReset:              "BA_MESSAGE_SESSION_RESET",
	MessageSessionCommands:           "BA_MESSAGE_SESSION_COMMANDS",
	MessageSessionDynamicsCorrection: "BA_MESSAGE_SESSION_DYNAMICS_CORRECTION",
	MessageNull:                      "BA_MESSAGE_NULL",
	MessageRequestRemotePlayer:       "BA_MESSAGE_REQUEST_REMOTE_PLAYER",
	MessageAttachRemotePlayer:        "BA_MESSAGE_ATTACH_REMOTE_PLAYER",
	MessageDetachRemotePlayer:        "BA_MESSAGE_DETACH_REMOTE_PLAYER",
	MessageRemotePlayerInputCommands: "BA_MESSAGE_REMOTE_PLAYER_INPUT_COMMANDS",
	MessageRemoveRemotePlayer:        "BA_MESSAGE_REMOVE_REMOTE_PLAYER",
	MessagePartyRoster:               "BA_MESSAGE_PARTY_ROSTER",
	MessageChat:                      "BA_MESSAGE_CHAT",
	MessagePartyMemberJoined:         "BA_MESSAGE_PARTY_MEMBER_JOINED",
	MessagePartyMemberLeft:           "BA_MESSAGE_PARTY_MEMBER_LEFT",
	MessageMultipart:                 "BA_MESSAGE_MULTIPART",
	MessageMultipartEnd:              "BA_MESSAGE_MULTIPART_END",
	MessageClientPlayerProfiles:      "BA_MESSAGE_CLIENT_PLAYER_PROFILES",
	MessageAttachRemotePlayer2:       "BA_MESSAGE_ATTACH_REMOTE_PLAYER_2",
	MessageHostInfo:                  "BA_MESSAGE_HOST_INFO",
	MessageClientInfo:                "BA_MESSAGE_CLIENT_INFO",
	MessageKickVote:                  "BA_MESSAGE_KICK_VOTE",
	MessageJMessage:                  "BA_MESSAGE_JMESSAGE",
	MessageClientPlayerProfilesJSON:  "BA_MESSAGE_CLIENT_PLAYER_PROFILES_JSON",
}

func (t MessageType) String() string { return lookup(messageNames, t) }

// JMessageScreenMessage is the only JSON message sub-type.
const JMessageScreenMessage = 0

func lookup[K ~byte](names map[K]string, k K) string {
	if s, ok := names[k]; ok {
		return s
	}
	return "UNKNOWN"
}
