package backend

import (
	"context"
	"fmt"
	"net"

	"github.com/fleetdeck/fleetdeck/internal/errors"
	"github.com/sabhiram/go-wol/wol"
)

// wolBroadcastAddr is where magic packets are sent; port 9 is the
// conventional discard port for wake-on-LAN.
const wolBroadcastAddr = "255.255.255.255:9"

// magicPacketSize is the wire size of a well-formed magic packet.
const magicPacketSize = 102

// Shutdown powers off the device in a new terminal window, so the
// operator watches the session (and any sudo prompt) instead of the
// command dying silently in the background.
func (r *Remote) Shutdown(ctx context.Context, hostname string) error {
	sshArgs := fmt.Sprintf("ssh -t %s \"sudo shutdown -h now\"", hostname)

	r.log.Info("dispatching shutdown for %s", hostname)
	if err := launchTerminal(ctx, sshArgs, modeNewWindow); err != nil {
		return errors.WrapWithCode(err, errors.ErrPower,
			fmt.Sprintf("Couldn't dispatch shutdown for '%s'", hostname),
			"Check a supported terminal application is installed")
	}
	return nil
}

// Wake broadcasts a wake-on-LAN magic packet for the MAC.
func (r *Remote) Wake(ctx context.Context, mac string) error {
	mp, err := wol.New(mac)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPower,
			fmt.Sprintf("Invalid MAC address %q", mac),
			"Check the target's 'mac' entry in fleet.yaml")
	}

	bs, err := mp.Marshal()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPower,
			"Couldn't build the magic packet", "")
	}

	udpAddr, err := net.ResolveUDPAddr("udp", wolBroadcastAddr)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPower,
			"Couldn't resolve the broadcast address", "")
	}

	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPower,
			"Couldn't open a broadcast socket",
			"Check the local network allows UDP broadcast")
	}
	defer conn.Close()

	n, err := conn.Write(bs)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrPower,
			fmt.Sprintf("Couldn't send the magic packet to %s", mac), "")
	}
	if n != magicPacketSize {
		return errors.New(errors.ErrPower,
			fmt.Sprintf("Magic packet truncated: sent %d of %d bytes", n, magicPacketSize), "")
	}

	r.log.Info("magic packet sent to %s", mac)
	return nil
}
