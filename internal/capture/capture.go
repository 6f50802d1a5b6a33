// Package capture writes injection exchanges to pcap files so they can
// be replayed or inspected with standard capture tooling.
package capture

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/jmassara/pkmforge/internal/inject"
)

// WriteExchange serializes one exchange as synthetic Ethernet/IPv4/TCP
// frames: the request from the client to the device, then the device ack
// if one was received. The device side uses the endpoint's IP and port
// when they parse; the client side is always synthetic.
func WriteExchange(path string, ex *inject.Exchange) error {
	if ex == nil {
		return fmt.Errorf("capture: nil exchange")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pcap: %w", err)
	}
	defer file.Close()

	writer := pcapgo.NewWriter(file)
	if err := writer.WriteFileHeader(65535, layers.LinkTypeEthernet); err != nil {
		return fmt.Errorf("write pcap header: %w", err)
	}

	clientIP := net.IP{192, 168, 100, 10}
	deviceIP, devicePort := endpointAddr(ex.Endpoint)
	clientPort := uint16(50000)

	clientSeq := uint32(1)
	deviceSeq := uint32(1)

	if err := writeFrame(writer, frame{
		srcMAC: clientMAC, dstMAC: deviceMAC,
		srcIP: clientIP, dstIP: deviceIP,
		srcPort: clientPort, dstPort: devicePort,
		seq: clientSeq, ack: deviceSeq,
		payload: ex.Request,
	}); err != nil {
		return err
	}
	clientSeq += uint32(len(ex.Request))

	if len(ex.Response) > 0 {
		if err := writeFrame(writer, frame{
			srcMAC: deviceMAC, dstMAC: clientMAC,
			srcIP: deviceIP, dstIP: clientIP,
			srcPort: devicePort, dstPort: clientPort,
			seq: deviceSeq, ack: clientSeq,
			payload: ex.Response,
		}); err != nil {
			return err
		}
	}

	return nil
}

var (
	clientMAC = net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}
	deviceMAC = net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x02}
)

type frame struct {
	srcMAC, dstMAC   net.HardwareAddr
	srcIP, dstIP     net.IP
	srcPort, dstPort uint16
	seq, ack         uint32
	payload          []byte
}

func writeFrame(writer *pcapgo.Writer, f frame) error {
	buffer := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{
		FixLengths:       true,
		ComputeChecksums: true,
	}

	ethernet := &layers.Ethernet{
		SrcMAC:       f.srcMAC,
		DstMAC:       f.dstMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    f.srcIP,
		DstIP:    f.dstIP,
	}
	tcp := &layers.TCP{
		SrcPort: layers.TCPPort(f.srcPort),
		DstPort: layers.TCPPort(f.dstPort),
		ACK:     true,
		PSH:     true,
		Seq:     f.seq,
		Ack:     f.ack,
	}
	_ = tcp.SetNetworkLayerForChecksum(ip)

	if err := gopacket.SerializeLayers(buffer, opts, ethernet, ip, tcp, gopacket.Payload(f.payload)); err != nil {
		return fmt.Errorf("serialize packet: %w", err)
	}
	if err := writer.WritePacket(gopacket.CaptureInfo{
		CaptureLength: len(buffer.Bytes()),
		Length:        len(buffer.Bytes()),
	}, buffer.Bytes()); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}
	return nil
}

// endpointAddr extracts the device IP and port from a host:port endpoint,
// falling back to synthetic values when the host is a name or the
// endpoint is malformed.
func endpointAddr(endpoint string) (net.IP, uint16) {
	ip := net.IP{192, 168, 100, 20}
	port := uint16(6000)
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		return ip, port
	}
	if parsed := net.ParseIP(host); parsed != nil {
		if v4 := parsed.To4(); v4 != nil {
			ip = v4
		}
	}
	if p, err := strconv.ParseUint(portStr, 10, 16); err == nil {
		port = uint16(p)
	}
	return ip, port
}
