package schema

// Enum codecs, grounded on the GTFS reference enums as modeled in
// jamespfennell/gtfs's enums.go (route_type, wheelchair_boarding,
// bikes_allowed, pickup/drop_off_type, direction_id).
var (
	wheelchairBoardingCodec = EnumCodec{
		Valid:        map[int]string{0: "NO_INFO", 1: "POSSIBLE", 2: "NOT_POSSIBLE"},
		Unrecognized: 0,
	}
	bikesAllowedCodec = EnumCodec{
		Valid:        map[int]string{0: "NO_INFO", 1: "ALLOWED", 2: "NOT_ALLOWED"},
		Unrecognized: 0,
	}
	directionIDCodec = EnumCodec{
		Valid:        map[int]string{0: "OUTBOUND", 1: "INBOUND"},
		Unrecognized: 0,
	}
	routeTypeCodec = EnumCodec{
		Valid: map[int]string{
			0: "TRAM", 1: "SUBWAY", 2: "RAIL", 3: "BUS", 4: "FERRY",
			5: "CABLE_TRAM", 6: "AERIAL_LIFT", 7: "FUNICULAR", 11: "TROLLEYBUS", 12: "MONORAIL",
		},
		Unrecognized: -1,
	}
	pickupDropOffTypeCodec = EnumCodec{
		Valid:        map[int]string{0: "REGULAR", 1: "NONE", 2: "PHONE_AGENCY", 3: "COORDINATE_WITH_DRIVER"},
		Unrecognized: 0,
	}
	locationTypeCodec = EnumCodec{
		Valid:        map[int]string{0: "STOP", 1: "STATION", 2: "ENTRANCE_EXIT", 3: "GENERIC_NODE", 4: "BOARDING_AREA"},
		Unrecognized: 0,
	}
	exceptionTypeCodec = EnumCodec{
		Valid:        map[int]string{1: "ADDED", 2: "REMOVED"},
		Unrecognized: 0,
	}
)

// Default returns the built-in descriptor covering the core GTFS Schedule
// tables exercised by this validator.
func Default() Descriptor {
	return Descriptor{Tables: map[string]Table{
		"agency.txt": {
			FileName: "agency.txt",
			Level:    Required,
			Columns: []Column{
				{Name: "agency_id", Type: ID, Level: Optional, PrimaryKey: true},
				{Name: "agency_name", Type: Text, Level: Required},
				{Name: "agency_url", Type: URL, Level: Required},
				{Name: "agency_timezone", Type: Timezone, Level: Required},
				{Name: "agency_lang", Type: Language, Level: Optional},
				{Name: "agency_phone", Type: Phone, Level: Optional},
				{Name: "agency_fare_url", Type: URL, Level: Optional},
				{Name: "agency_email", Type: Email, Level: Optional},
			},
		},
		"stops.txt": {
			FileName: "stops.txt",
			Level:    Required,
			Columns: []Column{
				{Name: "stop_id", Type: ID, Level: Required, PrimaryKey: true},
				{Name: "stop_code", Type: Text, Level: Optional},
				{Name: "stop_name", Type: Text, Level: ConditionallyRequired},
				{Name: "stop_desc", Type: Text, Level: Optional},
				{Name: "stop_lat", Type: Latitude, Level: ConditionallyRequired},
				{Name: "stop_lon", Type: Longitude, Level: ConditionallyRequired},
				{Name: "zone_id", Type: ID, Level: Optional},
				{Name: "stop_url", Type: URL, Level: Optional},
				{Name: "location_type", Type: Enum, Level: Optional, Enum: &locationTypeCodec},
				{Name: "parent_station", Type: ID, Level: ConditionallyRequired, Index: true,
					ForeignKey: &ForeignKey{LocalColumns: []string{"parent_station"}, RemoteTable: "stops.txt", RemoteColumns: []string{"stop_id"}}},
				{Name: "stop_timezone", Type: Timezone, Level: Optional},
				{Name: "wheelchair_boarding", Type: Enum, Level: Optional, Enum: &wheelchairBoardingCodec},
			},
		},
		"routes.txt": {
			FileName: "routes.txt",
			Level:    Required,
			Columns: []Column{
				{Name: "route_id", Type: ID, Level: Required, PrimaryKey: true},
				{Name: "agency_id", Type: ID, Level: ConditionallyRequired,
					ForeignKey: &ForeignKey{LocalColumns: []string{"agency_id"}, RemoteTable: "agency.txt", RemoteColumns: []string{"agency_id"}}},
				{Name: "route_short_name", Type: Text, Level: ConditionallyRequired, MixedCase: true},
				{Name: "route_long_name", Type: Text, Level: ConditionallyRequired, MixedCase: true},
				{Name: "route_desc", Type: Text, Level: Optional},
				{Name: "route_type", Type: Enum, Level: Required, Enum: &routeTypeCodec},
				{Name: "route_url", Type: URL, Level: Optional},
				{Name: "route_color", Type: Color, Level: Optional},
				{Name: "route_text_color", Type: Color, Level: Optional},
			},
		},
		"trips.txt": {
			FileName: "trips.txt",
			Level:    Required,
			Columns: []Column{
				{Name: "route_id", Type: ID, Level: Required, Index: true,
					ForeignKey: &ForeignKey{LocalColumns: []string{"route_id"}, RemoteTable: "routes.txt", RemoteColumns: []string{"route_id"}}},
				{Name: "service_id", Type: ID, Level: Required, Index: true},
				{Name: "trip_id", Type: ID, Level: Required, PrimaryKey: true},
				{Name: "trip_headsign", Type: Text, Level: Optional, MixedCase: true},
				{Name: "trip_short_name", Type: Text, Level: Optional, MixedCase: true},
				{Name: "direction_id", Type: Enum, Level: Optional, Enum: &directionIDCodec},
				{Name: "block_id", Type: ID, Level: Optional, Index: true},
				{Name: "shape_id", Type: ID, Level: ConditionallyRequired, Index: true,
					ForeignKey: &ForeignKey{LocalColumns: []string{"shape_id"}, RemoteTable: "shapes.txt", RemoteColumns: []string{"shape_id"}}},
				{Name: "wheelchair_accessible", Type: Enum, Level: Optional, Enum: &wheelchairBoardingCodec},
				{Name: "bikes_allowed", Type: Enum, Level: Optional, Enum: &bikesAllowedCodec},
			},
		},
		"stop_times.txt": {
			FileName: "stop_times.txt",
			Level:    Required,
			Columns: []Column{
				{Name: "trip_id", Type: ID, Level: Required, Index: true, PrimaryKey: true,
					ForeignKey: &ForeignKey{LocalColumns: []string{"trip_id"}, RemoteTable: "trips.txt", RemoteColumns: []string{"trip_id"}}},
				{Name: "arrival_time", Type: Time, Level: ConditionallyRequired},
				{Name: "departure_time", Type: Time, Level: ConditionallyRequired},
				{Name: "stop_id", Type: ID, Level: Required, Index: true,
					ForeignKey: &ForeignKey{LocalColumns: []string{"stop_id"}, RemoteTable: "stops.txt", RemoteColumns: []string{"stop_id"}}},
				{Name: "stop_sequence", Type: Integer, Level: Required, Bounds: NonNegative, PrimaryKey: true},
				{Name: "stop_headsign", Type: Text, Level: Optional, MixedCase: true},
				{Name: "pickup_type", Type: Enum, Level: Optional, Enum: &pickupDropOffTypeCodec},
				{Name: "drop_off_type", Type: Enum, Level: Optional, Enum: &pickupDropOffTypeCodec},
				{Name: "shape_dist_traveled", Type: Float, Level: Optional, Bounds: NonNegative},
				{Name: "timepoint", Type: Integer, Level: Optional},
			},
		},
		"calendar.txt": {
			FileName: "calendar.txt",
			Level:    Recommended,
			Columns: []Column{
				{Name: "service_id", Type: ID, Level: Required, PrimaryKey: true},
				{Name: "monday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "tuesday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "wednesday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "thursday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "friday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "saturday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "sunday", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "start_date", Type: Date, Level: Required},
				{Name: "end_date", Type: Date, Level: Required},
			},
		},
		"calendar_dates.txt": {
			FileName: "calendar_dates.txt",
			Level:    Recommended,
			Columns: []Column{
				{Name: "service_id", Type: ID, Level: Required, Index: true},
				{Name: "date", Type: Date, Level: Required},
				{Name: "exception_type", Type: Enum, Level: Required, Enum: &exceptionTypeCodec},
			},
		},
		"shapes.txt": {
			FileName: "shapes.txt",
			Level:    Optional,
			Columns: []Column{
				{Name: "shape_id", Type: ID, Level: Required, Index: true},
				{Name: "shape_pt_lat", Type: Latitude, Level: Required},
				{Name: "shape_pt_lon", Type: Longitude, Level: Required},
				{Name: "shape_pt_sequence", Type: Integer, Level: Required, Bounds: NonNegative},
				{Name: "shape_dist_traveled", Type: Float, Level: Optional, Bounds: NonNegative},
			},
		},
		"feed_info.txt": {
			FileName: "feed_info.txt",
			Level:    Recommended,
			Columns: []Column{
				{Name: "feed_publisher_name", Type: Text, Level: Required},
				{Name: "feed_publisher_url", Type: URL, Level: Required},
				{Name: "feed_lang", Type: Language, Level: Required},
				{Name: "default_lang", Type: Language, Level: Optional},
				{Name: "feed_start_date", Type: Date, Level: Optional},
				{Name: "feed_end_date", Type: Date, Level: Optional},
				{Name: "feed_version", Type: Text, Level: Optional},
				{Name: "feed_contact_email", Type: Email, Level: Optional},
				{Name: "feed_contact_url", Type: URL, Level: Optional},
			},
		},
	}}
}
