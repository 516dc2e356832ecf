package aws

import (
	"fmt"
	"math/bits"
	"net/netip"

	"github.com/convox/stdaws/pkg/structs"
)

// SubnetSplit cuts a network into a power of two count of equally sized
// subnets, assigning availability zones round-robin in the order the
// region reports them.
func (p *Provider) SubnetSplit(network string, opts structs.SubnetSplitOptions) (structs.Subnets, error) {
	log := Logger.At("SubnetSplit").Namespace("network=%q", network).Start()

	count := 4
	if opts.Count != nil {
		count = *opts.Count
	}

	if count < 1 || count&(count-1) != 0 {
		return nil, log.Error(errorInvalidSubnetCount(fmt.Sprintf("subnet count must be a positive power of 2: %d", count)))
	}

	zones, err := p.ZoneList()
	if err != nil {
		return nil, log.Error(err)
	}

	if len(zones) == 0 {
		return nil, log.Error(errorNoZones(fmt.Sprintf("no availability zones in region: %s", p.Region)))
	}

	prefix, err := netip.ParsePrefix(network)
	if err != nil {
		return nil, log.Error(errorInvalidNetwork(fmt.Sprintf("invalid network: %s", network)))
	}

	if prefix != prefix.Masked() {
		return nil, log.Error(errorInvalidNetwork(fmt.Sprintf("invalid network: %s", network)))
	}

	diff := bits.Len(uint(count)) - 1

	if prefix.Bits()+diff > prefix.Addr().BitLen() {
		return nil, log.Error(errorInvalidSubnetCount(fmt.Sprintf("cannot split %s into %d subnets", network, count)))
	}

	names := zones.Names()

	subnets := structs.Subnets{}

	for i := 0; i < count; i++ {
		subnets = append(subnets, structs.Subnet{
			AvailabilityZone: names[i%len(names)],
			Cidr:             subnetAt(prefix, diff, i).String(),
		})
	}

	return subnets, log.Successf("count=%d", len(subnets))
}

// subnetAt returns subnet number index of prefix split into 2^diff pieces,
// writing the index bits just below the prefix boundary.
func subnetAt(prefix netip.Prefix, diff, index int) netip.Prefix {
	bs := prefix.Addr().AsSlice()

	for b := 0; b < diff; b++ {
		if index&(1<<(diff-1-b)) != 0 {
			bit := prefix.Bits() + b
			bs[bit/8] |= 1 << (7 - bit%8)
		}
	}

	addr, _ := netip.AddrFromSlice(bs)

	return netip.PrefixFrom(addr, prefix.Bits()+diff)
}
