package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/jmassara/pkmforge/internal/inject"
)

func readPackets(t *testing.T, path string) []gopacket.Packet {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open pcap: %v", err)
	}
	defer file.Close()

	reader, err := pcapgo.NewReader(file)
	if err != nil {
		t.Fatalf("read pcap header: %v", err)
	}
	var packets []gopacket.Packet
	for {
		data, _, err := reader.ReadPacketData()
		if err != nil {
			break
		}
		packets = append(packets, gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default))
	}
	return packets
}

func tcpLayer(t *testing.T, packet gopacket.Packet) *layers.TCP {
	t.Helper()
	layer := packet.Layer(layers.LayerTypeTCP)
	if layer == nil {
		t.Fatalf("packet has no TCP layer")
	}
	return layer.(*layers.TCP)
}

func TestWriteExchange(t *testing.T) {
	request := inject.EncodeEnvelope(inject.Envelope{
		Command: inject.CommandWriteRecord,
		Address: 0x042DA8E8,
		Payload: bytes.Repeat([]byte{0xAB}, 344),
	})
	response := inject.EncodeAck(inject.StatusOK)
	ex := &inject.Exchange{
		Endpoint: "192.168.1.73:6000",
		Address:  0x042DA8E8,
		Request:  request,
		Response: response,
	}

	path := filepath.Join(t.TempDir(), "exchange.pcap")
	if err := WriteExchange(path, ex); err != nil {
		t.Fatalf("WriteExchange: %v", err)
	}

	packets := readPackets(t, path)
	if len(packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(packets))
	}

	req := tcpLayer(t, packets[0])
	if !bytes.Equal(req.Payload, request) {
		t.Errorf("request payload mismatch")
	}
	if req.DstPort != 6000 {
		t.Errorf("request dst port = %d, want 6000", req.DstPort)
	}

	resp := tcpLayer(t, packets[1])
	if !bytes.Equal(resp.Payload, response) {
		t.Errorf("response payload mismatch")
	}
	if resp.SrcPort != 6000 {
		t.Errorf("response src port = %d, want 6000", resp.SrcPort)
	}

	reqIP := packets[0].Layer(layers.LayerTypeIPv4).(*layers.IPv4)
	if reqIP.DstIP.String() != "192.168.1.73" {
		t.Errorf("request dst IP = %s, want 192.168.1.73", reqIP.DstIP)
	}
}

func TestWriteExchangeNoResponse(t *testing.T) {
	ex := &inject.Exchange{
		Endpoint: "device.local:6000",
		Address:  0x1000,
		Request: inject.EncodeEnvelope(inject.Envelope{
			Command: inject.CommandWriteRecord,
			Address: 0x1000,
			Payload: bytes.Repeat([]byte{0x11}, 344),
		}),
	}

	path := filepath.Join(t.TempDir(), "timeout.pcap")
	if err := WriteExchange(path, ex); err != nil {
		t.Fatalf("WriteExchange: %v", err)
	}

	packets := readPackets(t, path)
	if len(packets) != 1 {
		t.Fatalf("got %d packets, want 1", len(packets))
	}
}

func TestWriteExchangeNil(t *testing.T) {
	if err := WriteExchange(filepath.Join(t.TempDir(), "nil.pcap"), nil); err == nil {
		t.Fatal("expected error for nil exchange")
	}
}
